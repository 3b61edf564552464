package units

import "golang.org/x/text/language"

// FormatBitRate renders bits per second as kb/s below one megabit and as
// Mb/s above, matching the labels ffmpeg prints.
func FormatBitRate(bitsPerSecond int64, tag language.Tag) string {
	if bitsPerSecond < 1_000_000 {
		return formatNumber(tag, float64(bitsPerSecond/1000)) + " kb/s"
	}
	mbps := float64(bitsPerSecond/10_000) / 100
	return formatNumber(tag, mbps) + " Mb/s"
}
