package deck

import (
	"bytes"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"uniprofile/pkg/e"
)

// Static content of the IPB / UI profile deck.

var ipbRingkasan = []string{
	"Perguruan tinggi negeri unggul berlokasi di Bogor, Jawa Barat",
	"Bertransformasi menjadi Techno-Socio Entrepreneurial University",
	"Keunggulan: biosains tropika, pertanian, kelautan, dan teknologi terkait",
	"Sering masuk Top 50 dunia untuk Pertanian & Kehutanan (QS WUR)",
	"Akreditasi: Unggul; Program: Vokasi hingga Pascasarjana",
	"Kampus utama di Dramaga; inovasi untuk kemandirian pangan & keberlanjutan",
}

var ipbJalurMasuk = []string{
	"SNBP",
	"SNBT",
	"AFIRMASI DIKTI",
	"MANDIRI (Ketua OSIS, Talenta, SM-IPB, BUD, Kelas Internasional)",
}

// IPB lists eleven faculties and schools, too many for one readable
// slide, so the deck splits them across two.
var ipbFakultas1 = []string{
	"Fakultas Pertanian",
	"Fakultas Perikanan dan Ilmu Kelautan (FPIK)",
	"Fakultas Peternakan (FAPET)",
	"Fakultas Kehutanan dan Lingkungan (FKL)",
	"Fakultas Teknologi Pertanian (FATETA)",
	"Fakultas Matematika dan Ilmu Pengetahuan Alam (FMIPA)",
}

var ipbFakultas2 = []string{
	"Fakultas Ekonomi dan Manajemen (FEM)",
	"Fakultas Ekologi Manusia (FEMA)",
	"Sekolah Kedokteran Hewan dan Biomedis (SKHB)",
	"Sekolah Bisnis (SB)",
	"Sekolah Vokasi (SV)",
}

var uiRingkasan = []string{
	"PTN-BH tertua dan prestisius di Indonesia",
	"Kampus utama Green Campus di Depok; Kampus Salemba di Jakarta",
	"Kampus komprehensif dan multikultural, program Vokasi hingga Doktor",
	"14 Fakultas mencakup Kesehatan, Saintek, dan Soshum",
	"Peringkat teratas nasional dengan pengakuan global",
	"Fokus: riset, inovasi, pengabdian masyarakat; lulusan berdaya saing tinggi",
}

var uiJalurMasuk = []string{
	"SNBP",
	"SNBT",
	"SIMAK UI",
	"Talent Scouting",
	"PPKB",
	"Seleksi Jalur Prestasi",
}

var uiFakultas = []string{
	"Rumpun Kesehatan: 5 fakultas",
	"Rumpun Saintek: 3 fakultas",
	"Rumpun Soshum: 6 fakultas",
	"Program/Sekolah Lain: 3 program",
	"Rincian per rumpun pada dua slide berikut",
}

var uiKesehatan = []string{
	"Fakultas Kedokteran (FK)",
	"Fakultas Kedokteran Gigi (FKG)",
	"Fakultas Ilmu Keperawatan (FIK)",
	"Fakultas Kesehatan Masyarakat (FKM)",
	"Fakultas Farmasi (FF)",
}

var uiSaintek = []string{
	"Fakultas Teknik (FT)",
	"Fakultas Matematika dan Ilmu Pengetahuan Alam (FMIPA)",
	"Fakultas Ilmu Komputer (Fasilkom)",
}

var uiSoshum = []string{
	"Fakultas Hukum (FH)",
	"Fakultas Ekonomi dan Bisnis (FEB)",
	"Fakultas Ilmu Pengetahuan Budaya (FIB)",
	"Fakultas Psikologi (FPsi)",
	"Fakultas Ilmu Sosial dan Ilmu Politik (FISIP)",
	"Fakultas Ilmu Administrasi (FIA)",
}

var uiLainnya = []string{
	"Program Pendidikan Vokasi",
	"Sekolah Ilmu Lingkungan (SIL)",
	"Sekolah Kajian Stratejik dan Global (SKSG)",
}

// BuildProfilIPBUI assembles the fixed 11-slide IPB / UI profile deck and
// returns it as PPTX bytes. All content is static; only the closing slide
// carries the generation date.
func BuildProfilIPBUI(generatedAt time.Time) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = "Profil IPB University & Universitas Indonesia"
	p.GetDocumentProperties().Creator = "uniprofile"

	addTitleSlide(p,
		"Profil IPB University & Universitas Indonesia",
		"Ringkasan jalur masuk dan fakultas (disusun otomatis)")

	addBulletsSlide(p, "IPB University – Ringkasan", ipbRingkasan)
	addBulletsSlide(p, "IPB – Jalur Masuk", ipbJalurMasuk)
	addBulletsSlide(p, "IPB – Fakultas & Sekolah (1/2)", ipbFakultas1)
	addBulletsSlide(p, "IPB – Fakultas & Sekolah (2/2)", ipbFakultas2)

	addBulletsSlide(p, "Universitas Indonesia – Ringkasan", uiRingkasan)
	addBulletsSlide(p, "UI – Jalur Masuk", uiJalurMasuk)
	addBulletsSlide(p, "UI – Fakultas", uiFakultas)

	addTwoColumnSlide(p, "UI – Fakultas (Kesehatan & Saintek)",
		"Rumpun Kesehatan", uiKesehatan,
		"Rumpun Saintek", uiSaintek)
	addTwoColumnSlide(p, "UI – Fakultas (Soshum & Program Lain)",
		"Rumpun Soshum", uiSoshum,
		"Program/Sekolah Lain", uiLainnya)

	addClosingSlide(p, "Terima kasih", generatedAt)

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, e.Wrap("deck.BuildProfilIPBUI.NewWriter", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, e.Wrap("deck.BuildProfilIPBUI.WriteTo", err)
	}
	return buf.Bytes(), nil
}
