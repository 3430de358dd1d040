package deck

import (
	"time"

	ppt "github.com/VantageDataChat/GoPPT"
)

const emuPerInch = 914400

// Font sizes (pt).
const (
	fontTitle    = 44
	fontHeading  = 32
	fontSubtitle = 18
	fontColumn   = 20
	fontBody     = 18
	fontItem     = 16
)

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Slide builders. Each of the content builders appends exactly one slide;
// calling a builder twice appends two slides. Slide order is insertion
// order. The title builder fills the presentation's initial slide instead.

func addTitleSlide(p *ppt.Presentation, title, subtitle string) {
	slide := p.GetActiveSlide()

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(int64(0.5 * emuPerInch)).SetOffsetY(int64(2.0 * emuPerInch))
	titleShape.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(1.5 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontTitle).SetBold(true)
	alignCenter(titleShape.GetActiveParagraph())

	subShape := slide.CreateRichTextShape()
	subShape.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(3.8 * emuPerInch))
	subShape.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(0.8 * emuPerInch))
	str := subShape.CreateTextRun(subtitle)
	str.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor("FF64748B"))
	alignCenter(subShape.GetActiveParagraph())
}

func addBulletsSlide(p *ppt.Presentation, title string, bullets []string) {
	slide := p.CreateSlide()
	addSlideTitle(slide, title)

	content := slide.CreateRichTextShape()
	content.SetOffsetX(int64(0.7 * emuPerInch)).SetOffsetY(int64(1.6 * emuPerInch))
	content.SetWidth(int64(8.6 * emuPerInch)).SetHeight(int64(5.0 * emuPerInch))

	// The first bullet reuses the shape's initial empty paragraph, so an
	// empty list leaves exactly one empty paragraph behind.
	for i, b := range bullets {
		if i > 0 {
			content.CreateParagraph()
		}
		tr := content.CreateTextRun("• " + b)
		tr.GetFont().SetSize(fontBody)
	}
}

func addTwoColumnSlide(p *ppt.Presentation, title, leftTitle string, leftItems []string, rightTitle string, rightItems []string) {
	slide := p.CreateSlide()
	addSlideTitle(slide, title)

	addColumn(slide, 0.7, leftTitle, leftItems)
	addColumn(slide, 5.2, rightTitle, rightItems)
}

func addColumn(slide *ppt.Slide, offsetX float64, heading string, items []string) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(offsetX * emuPerInch)).SetOffsetY(int64(1.6 * emuPerInch))
	shape.SetWidth(int64(4.3 * emuPerInch)).SetHeight(int64(5.0 * emuPerInch))

	head := shape.CreateTextRun(heading)
	head.GetFont().SetSize(fontColumn).SetBold(true)

	for _, it := range items {
		shape.CreateParagraph()
		tr := shape.CreateTextRun("• " + it)
		tr.GetFont().SetSize(fontItem)
	}
}

func addClosingSlide(p *ppt.Presentation, title string, generatedAt time.Time) {
	slide := p.CreateSlide()
	addSlideTitle(slide, title)

	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(1.2 * emuPerInch)).SetOffsetY(int64(2.2 * emuPerInch))
	shape.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(3.0 * emuPerInch))
	tr := shape.CreateTextRun("Disusun otomatis pada " + formatTanggal(generatedAt))
	tr.GetFont().SetSize(fontSubtitle)
	alignCenter(shape.GetActiveParagraph())
}

func addSlideTitle(slide *ppt.Slide, title string) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(int64(0.5 * emuPerInch)).SetOffsetY(int64(0.4 * emuPerInch))
	titleShape.SetWidth(int64(9.0 * emuPerInch)).SetHeight(int64(0.8 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontHeading).SetBold(true)
}
