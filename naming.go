package binstruct

import (
	"reflect"
	"strings"
)

// BasePackage is the package prefix every generated codec lives under.
const BasePackage = "binstructgen"

// CodecSuffix is appended to the joined type hierarchy to name a codec.
const CodecSuffix = "_Codec"

// CodecName derives where the codec for a struct lives. The struct is given as
// the import path of its package plus its name hierarchy, outermost first.
//
// A struct "Point" in "example.com/geo" yields ("binstructgen/example.com/geo", "Point_Codec").
// The same derivation runs at generation time and at lookup time, so the two
// always agree.
func CodecName(pkgPath string, hierarchy ...string) (pkg, name string) {
	pkg = BasePackage
	if pkgPath != "" {
		pkg += "/" + pkgPath
	}
	return pkg, strings.Join(hierarchy, "_") + CodecSuffix
}

// FullCodecName is CodecName with both parts joined by a dot, the form used as registry key.
func FullCodecName(pkgPath string, hierarchy ...string) string {
	pkg, name := CodecName(pkgPath, hierarchy...)
	return pkg + "." + name
}

// CodecNameOf returns the registry key of the codec for t.
func CodecNameOf(t reflect.Type) string {
	return FullCodecName(t.PkgPath(), t.Name())
}
