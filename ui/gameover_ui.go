package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the end-of-run overlay: title, final stats, restart hint
// and a button that asks the host for a full restart.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRetry func()

	final components.Snapshot

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewGameOverUI(final components.Snapshot, onRetry func()) *GameOverUI {
	ui := &GameOverUI{
		OnRetry: onRetry,
		final:   final,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

// Summary is the final stats line shown under the title.
func Summary(s components.Snapshot) string {
	return fmt.Sprintf("ATK %d   Enemies left %d", s.Atk, s.Enemies)
}

func (ui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.GameOver.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.GameOver.Title, &ui.titleFace, &widget.LabelColor{
			Idle: config.GameOver.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(Summary(ui.final), &ui.normalFace, &widget.LabelColor{
			Idle: config.White,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.GameOver.Hint, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	contentContainer.AddChild(ui.buildRetryButton())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GameOverUI) buildRetryButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Try again", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnRetry != nil {
				ui.OnRetry()
			}
		}),
	)
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
