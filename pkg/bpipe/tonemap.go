package bpipe

import(
	"fmt"
	"image"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"
)

var(
	Tonemappers = []string{"drago03", "durand", "icam06", "linear", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

// CompareTonemap runs one of the library tone mapping operators over
// the accumulator, for eyeballing against the built-in histogram
// auto-exposure. The parameter tweaks keep the dense core of the
// render from blowing out.
func CompareTonemap(img hdr.Image, name string) (image.Image, error) {
	op, err := setupTonemapper(img, name)
	if err != nil {
		return nil, err
	}
	return op.Perform(), nil
}

func setupTonemapper(img hdr.Image, name string) (tmo.ToneMappingOperator, error) {
	switch name {
	case "drago03":
		op := tmo.NewDefaultDrago03(img)
		op.Bias = 1.0 // the default washes out the sparse halo
		return op, nil

	case "durand":
		return tmo.NewDefaultDurand(img), nil

	case "icam06":
		op := tmo.NewDefaultICam06(img)
		op.Contrast = 0.65
		op.MaxClipping = 0.99999
		return op, nil

	case "linear":
		return tmo.NewLinear(img), nil

	case "reinhard05":
		op := tmo.NewDefaultReinhard05(img)
		op.Chromatic = 0.005
		op.Light = 0.005
		return op, nil
	}
	return nil, fmt.Errorf("tone mapper %q not recognized, wanted %s", name, ListTonemappers())
}
