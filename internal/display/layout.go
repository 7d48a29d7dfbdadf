package display

import "image"

// iconSize is the edge of the square dashboard icons
const iconSize = 16

// DashboardLayout represents the placement of the dashboard fields
type DashboardLayout struct {
	Temperature FieldLayout
	Humidity    FieldLayout
}

// FieldLayout represents the placement of one readout
type FieldLayout struct {
	// Frame is the outlined box around the field
	Frame image.Rectangle
	// Icon is the top left corner of the icon
	Icon image.Point
	// Label is the baseline start of the label
	Label image.Point
	// Value is the baseline end of the right-aligned value
	Value image.Point
}

// GetDashboardLayout splits a width x height display into two stacked fields
func GetDashboardLayout(width, height int) DashboardLayout {
	half := height / 2
	return DashboardLayout{
		Temperature: fieldLayout(image.Rect(0, 0, width, half)),
		Humidity:    fieldLayout(image.Rect(0, half, width, height)),
	}
}

func fieldLayout(frame image.Rectangle) FieldLayout {
	top, h := frame.Min.Y, frame.Dy()
	return FieldLayout{
		Frame: frame,
		Icon:  image.Pt(frame.Min.X+4, top+(h-iconSize)/2),
		Label: image.Pt(frame.Min.X+iconSize+8, top+12),
		Value: image.Pt(frame.Max.X-4, top+h-3),
	}
}
