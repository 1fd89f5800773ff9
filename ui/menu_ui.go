package ui

import (
	"bytes"

	cfg "github.com/automoto/epicfantasy/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnQuit  func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	buttonFace text.Face
}

// NewMenuUI creates the main menu: a title above the Start and Quit buttons.
func NewMenuUI(onStart, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnQuit:  onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Menu.TitleFontSize,
	}
	mui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Menu.ButtonFontSize,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(cfg.Menu.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.button(cfg.Menu.StartLabel, func() { mui.OnStart() }))
	contentContainer.AddChild(mui.button(cfg.Menu.QuitLabel, func() { mui.OnQuit() }))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.ButtonTextColor,
			Hover:   cfg.Menu.ButtonTextColor,
			Pressed: cfg.Menu.ButtonTextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Menu.ButtonColor),
		Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHoverColor),
		Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressColor),
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
