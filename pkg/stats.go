package pkg

import (
	"log/slog"
	"os"

	human "github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/mem"
)

// logMemory records host memory use after a refresh. Decoding a large photo
// on a Pi Zero can push it into swap.
func logMemory(log *slog.Logger) {
	v, err := mem.VirtualMemory()
	if err != nil {
		log.Debug("Memory stats unavailable", "error", err)
		return
	}
	log.Debug("Host memory",
		"used", human.Bytes(v.Used),
		"total", human.Bytes(v.Total),
		"percent", int(v.UsedPercent+0.5))
}

// fileSize returns the humanized size of path, or "" if it cannot be read.
func fileSize(path string) string {
	st, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return human.Bytes(uint64(st.Size()))
}
