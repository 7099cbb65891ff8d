package style

// Short class names attached to rendered nodes. They are deliberately
// terse: every node in a tree carries several of them, so they dominate
// document size.
const (
	ClassRoot           = "ui"
	ClassAny            = "s"
	ClassSingle         = "e"
	ClassRow            = "r"
	ClassColumn         = "c"
	ClassPage           = "pg"
	ClassParagraph      = "p"
	ClassText           = "t"
	ClassGrid           = "g"
	ClassImageContainer = "ic"
	ClassWrapped        = "wrp"

	ClassWidthFill         = "wf"
	ClassWidthContent      = "wc"
	ClassWidthExact        = "we"
	ClassWidthFillPortion  = "wfp"
	ClassHeightFill        = "hf"
	ClassHeightContent     = "hc"
	ClassHeightExact       = "he"
	ClassHeightFillPortion = "hfp"
	ClassSEButton          = "sbt"

	ClassNearby    = "nb"
	ClassAbove     = "a"
	ClassBelow     = "b"
	ClassOnRight   = "or"
	ClassOnLeft    = "ol"
	ClassInFront   = "fr"
	ClassBehind    = "bh"
	ClassHasBehind = "hbh"

	ClassAlignTop            = "at"
	ClassAlignBottom         = "ab"
	ClassAlignRight          = "ar"
	ClassAlignLeft           = "al"
	ClassAlignCenterX        = "cx"
	ClassAlignCenterY        = "cy"
	ClassAlignedHorizontally = "ah"
	ClassAlignedVertically   = "av"

	ClassSpaceEvenly           = "sev"
	ClassContainer             = "ctr"
	ClassAlignContainerRight   = "acr"
	ClassAlignContainerBottom  = "acb"
	ClassAlignContainerCenterX = "accx"
	ClassAlignContainerCenterY = "accy"

	ClassContentTop     = "ct"
	ClassContentBottom  = "cb"
	ClassContentRight   = "cr"
	ClassContentLeft    = "cl"
	ClassContentCenterX = "ccx"
	ClassContentCenterY = "ccy"

	ClassNoTextSelection      = "notxt"
	ClassCursorPointer        = "cptr"
	ClassCursorText           = "ctxt"
	ClassPassPointerEvents    = "ppe"
	ClassCapturePointerEvents = "cpe"
	ClassTransparent          = "clr"
	ClassOpaque               = "oq"
	ClassOverflowHidden       = "oh"

	ClassHover         = "hv"
	ClassFocus         = "fcs"
	ClassFocusedWithin = "focus-within"
	ClassActive        = "atv"

	ClassScrollbars  = "sb"
	ClassScrollbarsX = "sbx"
	ClassScrollbarsY = "sby"
	ClassClip        = "cp"
	ClassClipX       = "cpx"
	ClassClipY       = "cpy"

	ClassBorderNone   = "bn"
	ClassBorderDashed = "bd"
	ClassBorderDotted = "bdt"
	ClassBorderSolid  = "bs"

	ClassSizeByCapital = "cap"
	ClassFullSize      = "fs"

	ClassTextThin         = "w1"
	ClassTextExtraLight   = "w2"
	ClassTextLight        = "w3"
	ClassTextNormalWeight = "w4"
	ClassTextMedium       = "w5"
	ClassTextSemiBold     = "w6"
	ClassBold             = "w7"
	ClassTextExtraBold    = "w8"
	ClassTextHeavy        = "w9"
	ClassItalic           = "i"
	ClassStrike           = "sk"
	ClassUnderline        = "u"
	ClassTextUnitalicized = "tun"

	ClassTextJustify    = "tj"
	ClassTextJustifyAll = "tja"
	ClassTextCenter     = "tc"
	ClassTextRight      = "tr"
	ClassTextLeft       = "tl"
	ClassTransition     = "ts"

	ClassInputText             = "it"
	ClassInputMultiline        = "iml"
	ClassInputMultilineParent  = "imlp"
	ClassInputMultilineFiller  = "imlf"
	ClassInputMultilineWrapper = "implw"
	ClassInputLabel            = "lbl"

	ClassLink = "lnk"
)
