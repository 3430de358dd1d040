package deck

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var zipSignature = []byte{0x50, 0x4B, 0x03, 0x04}

func TestBuildProfilIPBUI_ProducesValidPackage(t *testing.T) {
	t.Parallel()

	data, err := BuildProfilIPBUI(time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty deck output")
	}
	if !bytes.HasPrefix(data, zipSignature) {
		t.Fatalf("output does not start with the zip signature: % x", data[:4])
	}
	if got := slideCount(t, data); got != 11 {
		t.Fatalf("expected 11 slides, got %d", got)
	}
}

func TestBuildProfilIPBUI_StaticContent(t *testing.T) {
	t.Parallel()

	data, err := BuildProfilIPBUI(time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	title := slideXML(t, data, "ppt/slides/slide1.xml")
	if !strings.Contains(title, "Profil IPB University &amp; Universitas Indonesia") {
		t.Fatal("title slide missing deck title")
	}
	if !strings.Contains(title, "Ringkasan jalur masuk dan fakultas (disusun otomatis)") {
		t.Fatal("title slide missing subtitle")
	}

	closing := slideXML(t, data, "ppt/slides/slide11.xml")
	if !strings.Contains(closing, "Terima kasih") {
		t.Fatal("closing slide missing title")
	}
	if !strings.Contains(closing, "Disusun otomatis pada 14 Maret 2025") {
		t.Fatal("closing slide missing generation date")
	}
}

func TestBuildProfilIPBUI_OnlyDateVaries(t *testing.T) {
	t.Parallel()

	first, err := BuildProfilIPBUI(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := BuildProfilIPBUI(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if slideCount(t, first) != slideCount(t, second) {
		t.Fatal("slide count changed between builds")
	}

	// Every slide except the closing one is identical static content.
	for _, name := range []string{
		"ppt/slides/slide1.xml", "ppt/slides/slide2.xml", "ppt/slides/slide3.xml",
		"ppt/slides/slide4.xml", "ppt/slides/slide5.xml", "ppt/slides/slide6.xml",
		"ppt/slides/slide7.xml", "ppt/slides/slide8.xml", "ppt/slides/slide9.xml",
		"ppt/slides/slide10.xml",
	} {
		if slideXML(t, first, name) != slideXML(t, second, name) {
			t.Fatalf("static slide %s differs between builds", name)
		}
	}

	a := slideXML(t, first, "ppt/slides/slide11.xml")
	b := slideXML(t, second, "ppt/slides/slide11.xml")
	if !strings.Contains(a, "1 Januari 2025") || !strings.Contains(b, "31 Desember 2025") {
		t.Fatal("closing slides missing their generation dates")
	}
}

func TestFormatTanggal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), "2 Januari 2025"},
		{time.Date(2024, time.August, 17, 0, 0, 0, 0, time.UTC), "17 Agustus 2024"},
		{time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), "31 Desember 2023"},
	}
	for _, c := range cases {
		if got := formatTanggal(c.in); got != c.want {
			t.Fatalf("formatTanggal(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
