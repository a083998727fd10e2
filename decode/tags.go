package decode

// The 4-byte type tags the dispatcher can decode.
const (
	tagObject    = "Objc"
	tagGlobalObj = "GlbO"
	tagList      = "VlLs"
	tagDouble    = "doub"
	tagUnitFloat = "UntF"
	tagText      = "TEXT"
	tagEnum      = "enum"
	tagLong      = "long"
	tagComp      = "comp"
	tagBool      = "bool"

	// tagDoubleShort occurs only as a placeholder-scan recovery of a
	// truncated tagDouble; see dispatch.
	tagDoubleShort = "dou"
)

// opaqueTags are recognized but carry no representable value under the
// grammar. The dispatcher tolerates them without consuming any bytes.
var opaqueTags = map[string]bool{
	"type": true,
	"GlbC": true,
	"obj ": true,
	"alis": true,
	"tdta": true,
}

// scanTags are the literals the placeholder scanner recognizes as the
// trailing end of a growing prefix, longest match first.
var scanTags = []string{
	tagGlobalObj,
	tagObject,
	tagList,
	tagUnitFloat,
	tagText,
	tagEnum,
	tagLong,
	tagComp,
	tagBool,
	"type",
	"GlbC",
	"obj ",
	"alis",
	"tdta",
	tagDoubleShort,
}
