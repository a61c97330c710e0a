package headervars

import (
	"github.com/arloliu/dwg/bitstream"
	"github.com/arloliu/dwg/format"
)

var (
	always         = format.Always
	onlyR13ToR14   = format.Between(format.R13, format.R14)
	onlyR13ToR2004 = format.Between(format.R13, format.R2004)
	sinceR14       = format.Since(format.R14)
	sinceR2000     = format.Since(format.R2000)
	sinceR2004     = format.Since(format.R2004)
	sinceR2007     = format.Since(format.R2007)
	sinceR2010     = format.Since(format.R2010)
	sinceR2013     = format.Since(format.R2013)
	untilR2000     = format.Until(format.R2000)
)

// plotStyleByHandle gates CPSNID, which is only stored when the current plot
// style type is "by handle".
func plotStyleByHandle(h *HeaderVariables) bool {
	return h.CePsnType == 3
}

// schema lists every header variable in file order.
var schema = []field{
	// Preamble
	value("REQUIREDVERSIONS", sinceR2013, readBitLongLong, func(h *HeaderVariables) *uint64 { return &h.RequiredVersions }),
	reserved("unknown 412148564080.0", always, readBitDouble),
	reserved("unknown 1.0", always, readBitDouble),
	reserved("unknown 1.0", always, readBitDouble),
	reserved("unknown 1.0", always, readBitDouble),
	reserved("unknown text", always, readText),
	reserved("unknown text", always, readText),
	reserved("unknown text", always, readText),
	reserved("unknown text", always, readText),
	reserved("unknown 24", always, readBitLong),
	reserved("unknown 0", always, readBitLong),
	reserved("unknown short", onlyR13ToR14, readBitShort),
	value("current viewport entity header", untilR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.CurrentViewportEntityHeader }),

	// Modes
	value("DIMASO", always, readBit, func(h *HeaderVariables) *bool { return &h.DimAso }),
	value("DIMSHO", always, readBit, func(h *HeaderVariables) *bool { return &h.DimSho }),
	value("DIMSAV", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSav }),
	value("PLINEGEN", always, readBit, func(h *HeaderVariables) *bool { return &h.PlineGen }),
	value("ORTHOMODE", always, readBit, func(h *HeaderVariables) *bool { return &h.OrthoMode }),
	value("REGENMODE", always, readBit, func(h *HeaderVariables) *bool { return &h.RegenMode }),
	value("FILLMODE", always, readBit, func(h *HeaderVariables) *bool { return &h.FillMode }),
	value("QTEXTMODE", always, readBit, func(h *HeaderVariables) *bool { return &h.QTextMode }),
	value("PSLTSCALE", always, readBit, func(h *HeaderVariables) *bool { return &h.PsLtScale }),
	value("LIMCHECK", always, readBit, func(h *HeaderVariables) *bool { return &h.LimCheck }),
	value("BLIPMODE", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.BlipMode }),
	reserved("undocumented flag", sinceR2004, readBit),
	value("USRTIMER", always, readBit, func(h *HeaderVariables) *bool { return &h.UsrTimer }),
	value("SKPOLY", always, readBit, func(h *HeaderVariables) *bool { return &h.SkPoly }),
	value("ANGDIR", always, readBit, func(h *HeaderVariables) *bool { return &h.AngDir }),
	value("SPLFRAME", always, readBit, func(h *HeaderVariables) *bool { return &h.SplFrame }),
	value("ATTREQ", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.AttReq }),
	value("ATTDIA", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.AttDia }),
	value("MIRRTEXT", always, readBit, func(h *HeaderVariables) *bool { return &h.MirrText }),
	value("WORLDVIEW", always, readBit, func(h *HeaderVariables) *bool { return &h.WorldView }),
	value("WIREFRAME", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.Wireframe }),
	value("TILEMODE", always, readBit, func(h *HeaderVariables) *bool { return &h.TileMode }),
	value("PLIMCHECK", always, readBit, func(h *HeaderVariables) *bool { return &h.PLimCheck }),
	value("VISRETAIN", always, readBit, func(h *HeaderVariables) *bool { return &h.VisRetain }),
	value("DELOBJ", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DelObj }),
	value("DISPSILH", always, readBit, func(h *HeaderVariables) *bool { return &h.DispSilh }),
	value("PELLIPSE", always, readBit, func(h *HeaderVariables) *bool { return &h.PEllipse }),
	value("PROXYGRAPHICS", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.ProxyGraphics }),
	value("DRAGMODE", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DragMode }),
	value("TREEDEPTH", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.TreeDepth }),
	value("LUNITS", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.LUnits }),
	value("LUPREC", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.LUPrec }),
	value("AUNITS", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.AUnits }),
	value("AUPREC", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.AUPrec }),
	value("OSMODE", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.OsMode }),
	value("ATTMODE", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.AttMode }),
	value("COORDS", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.Coords }),
	value("PDMODE", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.PdMode }),
	value("PICKSTYLE", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.PickStyle }),
	reserved("unknown", sinceR2004, readBitLong),
	reserved("unknown", sinceR2004, readBitLong),
	reserved("unknown", sinceR2004, readBitLong),

	// Integer settings
	value("USERI1", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.UserI1 }),
	value("USERI2", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.UserI2 }),
	value("USERI3", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.UserI3 }),
	value("USERI4", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.UserI4 }),
	value("USERI5", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.UserI5 }),
	value("SPLINESEGS", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SplineSegs }),
	value("SURFU", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SurfU }),
	value("SURFV", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SurfV }),
	value("SURFTYPE", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SurfType }),
	value("SURFTAB1", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SurfTab1 }),
	value("SURFTAB2", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SurfTab2 }),
	value("SPLINETYPE", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.SplineType }),
	value("SHADEDGE", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.ShadEdge }),
	value("SHADEDIF", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.ShadeDif }),
	value("UNITMODE", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.UnitMode }),
	value("MAXACTVP", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.MaxActVp }),
	value("ISOLINES", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.IsoLines }),
	value("CMLJUST", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.CmlJust }),
	value("TEXTQLTY", always, readBitShort, func(h *HeaderVariables) *int16 { return &h.TextQlty }),

	// Real settings
	value("LTSCALE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.LtScale }),
	value("TEXTSIZE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.TextSize }),
	value("TRACEWID", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.TraceWid }),
	value("SKETCHINC", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.SketchInc }),
	value("FILLETRAD", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.FilletRad }),
	value("THICKNESS", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.Thickness }),
	value("ANGBASE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.AngBase }),
	value("PDSIZE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.PdSize }),
	value("PLINEWID", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.PlineWid }),
	value("USERR1", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.UserR1 }),
	value("USERR2", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.UserR2 }),
	value("USERR3", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.UserR3 }),
	value("USERR4", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.UserR4 }),
	value("USERR5", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.UserR5 }),
	value("CHAMFERA", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.ChamferA }),
	value("CHAMFERB", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.ChamferB }),
	value("CHAMFERC", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.ChamferC }),
	value("CHAMFERD", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.ChamferD }),
	value("FACETRES", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.FacetRes }),
	value("CMLSCALE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.CmlScale }),
	value("CELTSCALE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.CeLtScale }),
	value("MENUNAME", onlyR13ToR2004, readText, func(h *HeaderVariables) *string { return &h.MenuName }),

	// Dates and timers
	value("TDCREATE", always, readJulianDate, func(h *HeaderVariables) *JulianDate { return &h.TdCreate }),
	value("TDUPDATE", always, readJulianDate, func(h *HeaderVariables) *JulianDate { return &h.TdUpdate }),
	reserved("unknown", sinceR2004, readBitLong),
	reserved("unknown", sinceR2004, readBitLong),
	reserved("unknown", sinceR2004, readBitLong),
	value("TDINDWG", always, readJulianDate, func(h *HeaderVariables) *JulianDate { return &h.TdInDwg }),
	value("TDUSRTIMER", always, readJulianDate, func(h *HeaderVariables) *JulianDate { return &h.TdUsrTimer }),

	// Current settings
	value("CECOLOR", always, readColor, func(h *HeaderVariables) *bitstream.CmColor { return &h.CeColor }),
	value("HANDSEED", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.HandSeed }),
	value("CLAYER", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.CLayer }),
	value("TEXTSTYLE", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.TextStyle }),
	value("CELTYPE", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.CeLType }),
	value("CMATERIAL", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.CMaterial }),
	value("DIMSTYLE", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimStyle }),
	value("CMLSTYLE", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.CmlStyle }),
	value("PSVPSCALE", sinceR2000, readBitDouble, func(h *HeaderVariables) *float64 { return &h.PsVpScale }),

	// Paper space
	value("INSBASE (paper space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PInsBase }),
	value("EXTMIN (paper space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PExtMin }),
	value("EXTMAX (paper space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PExtMax }),
	value("LIMMIN (paper space)", always, read2RawDouble, func(h *HeaderVariables) *bitstream.Point2D { return &h.PLimMin }),
	value("LIMMAX (paper space)", always, read2RawDouble, func(h *HeaderVariables) *bitstream.Point2D { return &h.PLimMax }),
	value("ELEVATION (paper space)", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.PElevation }),
	value("UCSORG (paper space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrg }),
	value("UCSXDIR (paper space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsXDir }),
	value("UCSYDIR (paper space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsYDir }),
	value("UCSNAME (paper space)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.PUcsName }),
	value("PUCSORTHOREF", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.PUcsOrthoRef }),
	value("PUCSORTHOVIEW", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.PUcsOrthoView }),
	value("PUCSBASE", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.PUcsBase }),
	value("PUCSORGTOP", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrgTop }),
	value("PUCSORGBOTTOM", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrgBottom }),
	value("PUCSORGLEFT", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrgLeft }),
	value("PUCSORGRIGHT", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrgRight }),
	value("PUCSORGFRONT", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrgFront }),
	value("PUCSORGBACK", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.PUcsOrgBack }),

	// Model space
	value("INSBASE (model space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.InsBase }),
	value("EXTMIN (model space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.ExtMin }),
	value("EXTMAX (model space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.ExtMax }),
	value("LIMMIN (model space)", always, read2RawDouble, func(h *HeaderVariables) *bitstream.Point2D { return &h.LimMin }),
	value("LIMMAX (model space)", always, read2RawDouble, func(h *HeaderVariables) *bitstream.Point2D { return &h.LimMax }),
	value("ELEVATION (model space)", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.Elevation }),
	value("UCSORG (model space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrg }),
	value("UCSXDIR (model space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsXDir }),
	value("UCSYDIR (model space)", always, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsYDir }),
	value("UCSNAME (model space)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.UcsName }),
	value("UCSORTHOREF", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.UcsOrthoRef }),
	value("UCSORTHOVIEW", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.UcsOrthoView }),
	value("UCSBASE", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.UcsBase }),
	value("UCSORGTOP", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrgTop }),
	value("UCSORGBOTTOM", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrgBottom }),
	value("UCSORGLEFT", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrgLeft }),
	value("UCSORGRIGHT", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrgRight }),
	value("UCSORGFRONT", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrgFront }),
	value("UCSORGBACK", sinceR2000, read3BitDouble, func(h *HeaderVariables) *bitstream.Point3D { return &h.UcsOrgBack }),
	value("DIMPOST", sinceR2000, readText, func(h *HeaderVariables) *string { return &h.DimPost }),
	value("DIMAPOST", sinceR2000, readText, func(h *HeaderVariables) *string { return &h.DimAPost }),

	// Dimension variables
	value("DIMTOL", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimTol }),
	value("DIMLIM", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimLim }),
	value("DIMTIH", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimTih }),
	value("DIMTOH", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimToh }),
	value("DIMSE1", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSe1 }),
	value("DIMSE2", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSe2 }),
	value("DIMALT", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimAlt }),
	value("DIMTOFL", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimTofl }),
	value("DIMSAH", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSah }),
	value("DIMTIX", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimTix }),
	value("DIMSOXD", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSoxd }),
	value("DIMALTD", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimAltD }),
	value("DIMZIN", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimZin }),
	value("DIMSD1", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSd1 }),
	value("DIMSD2", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimSd2 }),
	value("DIMTOLJ", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimTolJ }),
	value("DIMJUST", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimJust }),
	value("DIMFIT", onlyR13ToR14, readRawChar, func(h *HeaderVariables) *uint8 { return &h.DimFit }),
	value("DIMUPT", onlyR13ToR14, readBit, func(h *HeaderVariables) *bool { return &h.DimUpt }),
	value("DIMTZIN", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimTZin }),
	value("DIMALTZ", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimAltZ }),
	value("DIMALTTZ", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimAltTZ }),
	value("DIMTAD", onlyR13ToR14, readCharAsShort, func(h *HeaderVariables) *int16 { return &h.DimTad }),
	value("DIMUNIT", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimUnit }),
	value("DIMAUNIT", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAUnit }),
	value("DIMDEC", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimDec }),
	value("DIMTDEC", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTDec }),
	value("DIMALTU", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltU }),
	value("DIMALTTD", onlyR13ToR14, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltTD }),
	value("DIMTXSTY", onlyR13ToR14, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimTxSty }),
	value("DIMSCALE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimScale }),
	value("DIMASZ", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimAsz }),
	value("DIMEXO", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimExo }),
	value("DIMDLI", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimDli }),
	value("DIMEXE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimExe }),
	value("DIMRND", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimRnd }),
	value("DIMDLE", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimDle }),
	value("DIMTP", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimTp }),
	value("DIMTM", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimTm }),
	value("DIMFXL", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimFxl }),
	value("DIMJOGANG", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimJogAng }),
	value("DIMTFILL", sinceR2007, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTFill }),
	value("DIMTFILLCLR", sinceR2007, readColor, func(h *HeaderVariables) *bitstream.CmColor { return &h.DimTFillClr }),
	value("DIMTOL", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimTol }),
	value("DIMLIM", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimLim }),
	value("DIMTIH", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimTih }),
	value("DIMTOH", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimToh }),
	value("DIMSE1", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimSe1 }),
	value("DIMSE2", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimSe2 }),
	value("DIMTAD", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTad }),
	value("DIMZIN", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimZin }),
	value("DIMAZIN", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAZin }),
	value("DIMARCSYM", sinceR2007, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimArcSym }),
	value("DIMTXT", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimTxt }),
	value("DIMCEN", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimCen }),
	value("DIMTSZ", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimTsz }),
	value("DIMALTF", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimAltF }),
	value("DIMLFAC", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimLFac }),
	value("DIMTVP", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimTvp }),
	value("DIMTFAC", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimTFac }),
	value("DIMGAP", always, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimGap }),
	value("DIMPOST", onlyR13ToR14, readText, func(h *HeaderVariables) *string { return &h.DimPost }),
	value("DIMAPOST", onlyR13ToR14, readText, func(h *HeaderVariables) *string { return &h.DimAPost }),
	value("DIMBLK", onlyR13ToR14, readText, func(h *HeaderVariables) *string { return &h.DimBlkName }),
	value("DIMBLK1", onlyR13ToR14, readText, func(h *HeaderVariables) *string { return &h.DimBlk1Name }),
	value("DIMBLK2", onlyR13ToR14, readText, func(h *HeaderVariables) *string { return &h.DimBlk2Name }),
	value("DIMALTRND", sinceR2000, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimAltRnd }),
	value("DIMALT", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimAlt }),
	value("DIMALTD", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltD }),
	value("DIMTOFL", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimTofl }),
	value("DIMSAH", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimSah }),
	value("DIMTIX", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimTix }),
	value("DIMSOXD", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimSoxd }),
	value("DIMCLRD", always, readColor, func(h *HeaderVariables) *bitstream.CmColor { return &h.DimClrD }),
	value("DIMCLRE", always, readColor, func(h *HeaderVariables) *bitstream.CmColor { return &h.DimClrE }),
	value("DIMCLRT", always, readColor, func(h *HeaderVariables) *bitstream.CmColor { return &h.DimClrT }),
	value("DIMADEC", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimADec }),
	value("DIMDEC", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimDec }),
	value("DIMTDEC", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTDec }),
	value("DIMALTU", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltU }),
	value("DIMALTTD", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltTD }),
	value("DIMAUNIT", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAUnit }),
	value("DIMFRAC", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimFrac }),
	value("DIMLUNIT", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimLUnit }),
	value("DIMDSEP", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimDSep }),
	value("DIMTMOVE", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTMove }),
	value("DIMJUST", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimJust }),
	value("DIMSD1", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimSd1 }),
	value("DIMSD2", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimSd2 }),
	value("DIMTOLJ", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTolJ }),
	value("DIMTZIN", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimTZin }),
	value("DIMALTZ", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltZ }),
	value("DIMALTTZ", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAltTZ }),
	value("DIMUPT", sinceR2000, readBit, func(h *HeaderVariables) *bool { return &h.DimUpt }),
	value("DIMATFIT", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimAtFit }),
	value("DIMFXLON", sinceR2007, readBit, func(h *HeaderVariables) *bool { return &h.DimFxlOn }),
	value("DIMTXTDIRECTION", sinceR2010, readBit, func(h *HeaderVariables) *bool { return &h.DimTxtDirection }),
	value("DIMALTMZF", sinceR2010, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimAltMzf }),
	value("DIMALTMZS", sinceR2010, readText, func(h *HeaderVariables) *string { return &h.DimAltMzs }),
	value("DIMMZF", sinceR2010, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DimMzf }),
	value("DIMMZS", sinceR2010, readText, func(h *HeaderVariables) *string { return &h.DimMzs }),
	value("DIMTXSTY", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimTxSty }),
	value("DIMLDRBLK", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimLdrBlk }),
	value("DIMBLK", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimBlk }),
	value("DIMBLK1", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimBlk1 }),
	value("DIMBLK2", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimBlk2 }),
	value("DIMLTYPE", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimLType }),
	value("DIMLTEX1", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimLTex1 }),
	value("DIMLTEX2", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimLTex2 }),
	value("DIMLWD", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimLwd }),
	value("DIMLWE", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.DimLwe }),

	// Table control objects
	value("BLOCK CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.BlockControl }),
	value("LAYER CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.LayerControl }),
	value("STYLE CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.StyleControl }),
	value("LINETYPE CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.LinetypeControl }),
	value("VIEW CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.ViewControl }),
	value("UCS CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.UcsControl }),
	value("VPORT CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.VportControl }),
	value("APPID CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.AppIDControl }),
	value("DIMSTYLE CONTROL OBJECT", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DimStyleControl }),
	value("VIEWPORT ENTITY HEADER CONTROL OBJECT", untilR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.ViewportEntityHeaderControl }),

	// Dictionaries
	value("DICTIONARY (ACAD_GROUP)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictAcadGroup }),
	value("DICTIONARY (ACAD_MLINESTYLE)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictAcadMlineStyle }),
	value("DICTIONARY (NAMED OBJECTS)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictNamedObjects }),
	value("TSTACKALIGN", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.TStackAlign }),
	value("TSTACKSIZE", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.TStackSize }),
	value("HYPERLINKBASE", sinceR2000, readText, func(h *HeaderVariables) *string { return &h.HyperlinkBase }),
	value("STYLESHEET", sinceR2000, readText, func(h *HeaderVariables) *string { return &h.StyleSheet }),
	value("DICTIONARY (LAYOUTS)", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictLayouts }),
	value("DICTIONARY (PLOTSETTINGS)", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictPlotSettings }),
	value("DICTIONARY (PLOTSTYLES)", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictPlotStyles }),
	value("DICTIONARY (MATERIALS)", sinceR2004, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictMaterials }),
	value("DICTIONARY (COLORS)", sinceR2004, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictColors }),
	value("DICTIONARY (VISUALSTYLE)", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DictVisualStyle }),
	reserved("unknown handle", sinceR2013, readHandle),

	// Drawing properties
	value("FLAGS", sinceR2000, readBitLong, func(h *HeaderVariables) *int32 { return &h.Flags }),
	value("INSUNITS", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.InsUnits }),
	value("CEPSNTYPE", sinceR2000, readBitShort, func(h *HeaderVariables) *int16 { return &h.CePsnType }),
	when(value("CPSNID", sinceR2000, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.CPsnID }), plotStyleByHandle),
	value("FINGERPRINTGUID", sinceR2000, readText, func(h *HeaderVariables) *string { return &h.FingerprintGUID }),
	value("VERSIONGUID", sinceR2000, readText, func(h *HeaderVariables) *string { return &h.VersionGUID }),
	value("SORTENTS", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.SortEnts }),
	value("INDEXCTL", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.IndexCtl }),
	value("HIDETEXT", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.HideText }),
	value("XCLIPFRAME", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.XClipFrame }),
	value("DIMASSOC", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.DimAssoc }),
	value("HALOGAP", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.HaloGap }),
	value("OBSCUREDCOLOR", sinceR2004, readBitShort, func(h *HeaderVariables) *int16 { return &h.ObscuredColor }),
	value("INTERSECTIONCOLOR", sinceR2004, readBitShort, func(h *HeaderVariables) *int16 { return &h.IntersectionColor }),
	value("OBSCUREDLTYPE", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.ObscuredLType }),
	value("INTERSECTIONDISPLAY", sinceR2004, readRawChar, func(h *HeaderVariables) *uint8 { return &h.IntersectionDisplay }),
	value("PROJECTNAME", sinceR2004, readText, func(h *HeaderVariables) *string { return &h.ProjectName }),

	// Block records and line types
	value("BLOCK_RECORD (*PAPER_SPACE)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.PaperSpaceBlockRecord }),
	value("BLOCK_RECORD (*MODEL_SPACE)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.ModelSpaceBlockRecord }),
	value("LTYPE (BYLAYER)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.LTypeByLayer }),
	value("LTYPE (BYBLOCK)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.LTypeByBlock }),
	value("LTYPE (CONTINUOUS)", always, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.LTypeContinuous }),

	// R2007 and later
	value("CAMERADISPLAY", sinceR2007, readBit, func(h *HeaderVariables) *bool { return &h.CameraDisplay }),
	reserved("unknown", sinceR2007, readBitLong),
	reserved("unknown", sinceR2007, readBitLong),
	reserved("unknown", sinceR2007, readBitDouble),
	value("STEPSPERSEC", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.StepsPerSec }),
	value("STEPSIZE", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.StepSize }),
	value("3DDWFPREC", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.DwfPrec3D }),
	value("LENSLENGTH", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.LensLength }),
	value("CAMERAHEIGHT", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.CameraHeight }),
	value("SOLIDHIST", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.SolidHist }),
	value("SHOWHIST", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.ShowHist }),
	value("PSOLWIDTH", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.PSolWidth }),
	value("PSOLHEIGHT", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.PSolHeight }),
	value("LOFTANG1", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.LoftAng1 }),
	value("LOFTANG2", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.LoftAng2 }),
	value("LOFTMAG1", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.LoftMag1 }),
	value("LOFTMAG2", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.LoftMag2 }),
	value("LOFTPARAM", sinceR2007, readBitShort, func(h *HeaderVariables) *int16 { return &h.LoftParam }),
	value("LOFTNORMALS", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.LoftNormals }),
	value("LATITUDE", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.Latitude }),
	value("LONGITUDE", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.Longitude }),
	value("NORTHDIRECTION", sinceR2007, readBitDouble, func(h *HeaderVariables) *float64 { return &h.NorthDirection }),
	value("TIMEZONE", sinceR2007, readBitLong, func(h *HeaderVariables) *int32 { return &h.TimeZone }),
	value("LIGHTGLYPHDISPLAY", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.LightGlyphDisplay }),
	value("TILEMODELIGHTSYNCH", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.TileModeLightSynch }),
	value("DWFFRAME", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.DwfFrame }),
	value("DGNFRAME", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.DgnFrame }),
	reserved("unknown", sinceR2007, readBit),
	value("INTERFERECOLOR", sinceR2007, readColor, func(h *HeaderVariables) *bitstream.CmColor { return &h.InterfereColor }),
	value("INTERFEREOBJVS", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.InterfereObjVS }),
	value("INTERFEREVPVS", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.InterfereVpVS }),
	value("DRAGVS", sinceR2007, readHandle, func(h *HeaderVariables) *bitstream.HandleRef { return &h.DragVS }),
	value("CSHADOW", sinceR2007, readRawChar, func(h *HeaderVariables) *uint8 { return &h.CShadow }),
	reserved("unknown", sinceR2007, readBitDouble),

	// Trailer
	reserved("unknown", sinceR14, readBitShort),
	reserved("unknown", sinceR14, readBitShort),
	reserved("unknown", sinceR14, readBitShort),
	reserved("unknown", sinceR14, readBitShort),
}
