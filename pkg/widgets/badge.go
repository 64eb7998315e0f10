package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/layout"
	"github.com/go-mosaic/mosaic/pkg/theme"
	"github.com/go-mosaic/mosaic/pkg/toast"
)

// Badge is a small status pill, styled by the theme's badge variant table.
type Badge struct {
	// Label is the badge text.
	Label string

	// Variant selects the color row, using the shared status taxonomy.
	Variant toast.Type
}

func (b Badge) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b Badge) Key() any {
	return nil
}

func (b Badge) Build(ctx core.BuildContext) core.Widget {
	badgeTheme := theme.ThemeOf(ctx).BadgeThemeOf()
	style := badgeTheme.VariantOf(b.Variant)

	return Box{
		Color:        style.Background,
		BorderRadius: badgeTheme.BorderRadius,
		Padding:      layout.EdgeInsetsSymmetric(8, 2),
		ChildWidget: Text{
			Content: b.Label,
			Style: graphics.TextStyle{
				Color:      style.Foreground,
				FontSize:   badgeTheme.FontSize,
				FontWeight: graphics.FontWeightMedium,
			},
		},
	}
}
