package deck

import (
	"fmt"
	"time"
)

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatTanggal renders a date as "2 Januari 2006". Month names are fixed
// rather than taken from the process locale so output is deterministic.
func formatTanggal(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}
