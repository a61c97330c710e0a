package headervars

import "github.com/arloliu/dwg/bitstream"

// HeaderVariables holds the drawing settings stored in the header variable
// section. Fields absent from a file's revision keep their zero value.
//
// Paper space copies of the extents and UCS settings are prefixed with P.
// R13 and R14 files store the dimension block names as text
// (DimBlkName, DimBlk1Name, DimBlk2Name); later files store handles
// (DimBlk, DimBlk1, DimBlk2).
type HeaderVariables struct {
	// Preamble
	RequiredVersions            uint64
	CurrentViewportEntityHeader bitstream.HandleRef

	// Modes
	DimAso        bool
	DimSho        bool
	DimSav        bool
	PlineGen      bool
	OrthoMode     bool
	RegenMode     bool
	FillMode      bool
	QTextMode     bool
	PsLtScale     bool
	LimCheck      bool
	BlipMode      bool
	UsrTimer      bool
	SkPoly        bool
	AngDir        bool
	SplFrame      bool
	AttReq        bool
	AttDia        bool
	MirrText      bool
	WorldView     bool
	Wireframe     bool
	TileMode      bool
	PLimCheck     bool
	VisRetain     bool
	DelObj        bool
	DispSilh      bool
	PEllipse      bool
	ProxyGraphics int16
	DragMode      int16
	TreeDepth     int16
	LUnits        int16
	LUPrec        int16
	AUnits        int16
	AUPrec        int16
	OsMode        int16
	AttMode       int16
	Coords        int16
	PdMode        int16
	PickStyle     int16

	// Integer settings
	UserI1     int16
	UserI2     int16
	UserI3     int16
	UserI4     int16
	UserI5     int16
	SplineSegs int16
	SurfU      int16
	SurfV      int16
	SurfType   int16
	SurfTab1   int16
	SurfTab2   int16
	SplineType int16
	ShadEdge   int16
	ShadeDif   int16
	UnitMode   int16
	MaxActVp   int16
	IsoLines   int16
	CmlJust    int16
	TextQlty   int16

	// Real settings
	LtScale   float64
	TextSize  float64
	TraceWid  float64
	SketchInc float64
	FilletRad float64
	Thickness float64
	AngBase   float64
	PdSize    float64
	PlineWid  float64
	UserR1    float64
	UserR2    float64
	UserR3    float64
	UserR4    float64
	UserR5    float64
	ChamferA  float64
	ChamferB  float64
	ChamferC  float64
	ChamferD  float64
	FacetRes  float64
	CmlScale  float64
	CeLtScale float64
	MenuName  string

	// Dates and timers
	TdCreate   JulianDate
	TdUpdate   JulianDate
	TdInDwg    JulianDate
	TdUsrTimer JulianDate

	// Current settings
	CeColor   bitstream.CmColor
	HandSeed  bitstream.HandleRef
	CLayer    bitstream.HandleRef
	TextStyle bitstream.HandleRef
	CeLType   bitstream.HandleRef
	CMaterial bitstream.HandleRef
	DimStyle  bitstream.HandleRef
	CmlStyle  bitstream.HandleRef
	PsVpScale float64

	// Paper space
	PInsBase      bitstream.Point3D
	PExtMin       bitstream.Point3D
	PExtMax       bitstream.Point3D
	PLimMin       bitstream.Point2D
	PLimMax       bitstream.Point2D
	PElevation    float64
	PUcsOrg       bitstream.Point3D
	PUcsXDir      bitstream.Point3D
	PUcsYDir      bitstream.Point3D
	PUcsName      bitstream.HandleRef
	PUcsOrthoRef  bitstream.HandleRef
	PUcsOrthoView int16
	PUcsBase      bitstream.HandleRef
	PUcsOrgTop    bitstream.Point3D
	PUcsOrgBottom bitstream.Point3D
	PUcsOrgLeft   bitstream.Point3D
	PUcsOrgRight  bitstream.Point3D
	PUcsOrgFront  bitstream.Point3D
	PUcsOrgBack   bitstream.Point3D

	// Model space
	InsBase      bitstream.Point3D
	ExtMin       bitstream.Point3D
	ExtMax       bitstream.Point3D
	LimMin       bitstream.Point2D
	LimMax       bitstream.Point2D
	Elevation    float64
	UcsOrg       bitstream.Point3D
	UcsXDir      bitstream.Point3D
	UcsYDir      bitstream.Point3D
	UcsName      bitstream.HandleRef
	UcsOrthoRef  bitstream.HandleRef
	UcsOrthoView int16
	UcsBase      bitstream.HandleRef
	UcsOrgTop    bitstream.Point3D
	UcsOrgBottom bitstream.Point3D
	UcsOrgLeft   bitstream.Point3D
	UcsOrgRight  bitstream.Point3D
	UcsOrgFront  bitstream.Point3D
	UcsOrgBack   bitstream.Point3D
	DimPost      string
	DimAPost     string

	// Dimension variables
	DimTol          bool
	DimLim          bool
	DimTih          bool
	DimToh          bool
	DimSe1          bool
	DimSe2          bool
	DimAlt          bool
	DimTofl         bool
	DimSah          bool
	DimTix          bool
	DimSoxd         bool
	DimAltD         int16
	DimZin          int16
	DimSd1          bool
	DimSd2          bool
	DimTolJ         int16
	DimJust         int16
	DimFit          uint8
	DimUpt          bool
	DimTZin         int16
	DimAltZ         int16
	DimAltTZ        int16
	DimTad          int16
	DimUnit         int16
	DimAUnit        int16
	DimDec          int16
	DimTDec         int16
	DimAltU         int16
	DimAltTD        int16
	DimTxSty        bitstream.HandleRef
	DimScale        float64
	DimAsz          float64
	DimExo          float64
	DimDli          float64
	DimExe          float64
	DimRnd          float64
	DimDle          float64
	DimTp           float64
	DimTm           float64
	DimFxl          float64
	DimJogAng       float64
	DimTFill        int16
	DimTFillClr     bitstream.CmColor
	DimAZin         int16
	DimArcSym       int16
	DimTxt          float64
	DimCen          float64
	DimTsz          float64
	DimAltF         float64
	DimLFac         float64
	DimTvp          float64
	DimTFac         float64
	DimGap          float64
	DimBlkName      string
	DimBlk1Name     string
	DimBlk2Name     string
	DimAltRnd       float64
	DimClrD         bitstream.CmColor
	DimClrE         bitstream.CmColor
	DimClrT         bitstream.CmColor
	DimADec         int16
	DimFrac         int16
	DimLUnit        int16
	DimDSep         int16
	DimTMove        int16
	DimAtFit        int16
	DimFxlOn        bool
	DimTxtDirection bool
	DimAltMzf       float64
	DimAltMzs       string
	DimMzf          float64
	DimMzs          string
	DimLdrBlk       bitstream.HandleRef
	DimBlk          bitstream.HandleRef
	DimBlk1         bitstream.HandleRef
	DimBlk2         bitstream.HandleRef
	DimLType        bitstream.HandleRef
	DimLTex1        bitstream.HandleRef
	DimLTex2        bitstream.HandleRef
	DimLwd          int16
	DimLwe          int16

	// Table control objects
	BlockControl                bitstream.HandleRef
	LayerControl                bitstream.HandleRef
	StyleControl                bitstream.HandleRef
	LinetypeControl             bitstream.HandleRef
	ViewControl                 bitstream.HandleRef
	UcsControl                  bitstream.HandleRef
	VportControl                bitstream.HandleRef
	AppIDControl                bitstream.HandleRef
	DimStyleControl             bitstream.HandleRef
	ViewportEntityHeaderControl bitstream.HandleRef

	// Dictionaries
	DictAcadGroup      bitstream.HandleRef
	DictAcadMlineStyle bitstream.HandleRef
	DictNamedObjects   bitstream.HandleRef
	TStackAlign        int16
	TStackSize         int16
	HyperlinkBase      string
	StyleSheet         string
	DictLayouts        bitstream.HandleRef
	DictPlotSettings   bitstream.HandleRef
	DictPlotStyles     bitstream.HandleRef
	DictMaterials      bitstream.HandleRef
	DictColors         bitstream.HandleRef
	DictVisualStyle    bitstream.HandleRef

	// Drawing properties
	Flags               int32
	InsUnits            int16
	CePsnType           int16
	CPsnID              bitstream.HandleRef
	FingerprintGUID     string
	VersionGUID         string
	SortEnts            uint8
	IndexCtl            uint8
	HideText            uint8
	XClipFrame          uint8
	DimAssoc            uint8
	HaloGap             uint8
	ObscuredColor       int16
	IntersectionColor   int16
	ObscuredLType       uint8
	IntersectionDisplay uint8
	ProjectName         string

	// Block records and line types
	PaperSpaceBlockRecord bitstream.HandleRef
	ModelSpaceBlockRecord bitstream.HandleRef
	LTypeByLayer          bitstream.HandleRef
	LTypeByBlock          bitstream.HandleRef
	LTypeContinuous       bitstream.HandleRef

	// R2007 and later
	CameraDisplay      bool
	StepsPerSec        float64
	StepSize           float64
	DwfPrec3D          float64
	LensLength         float64
	CameraHeight       float64
	SolidHist          uint8
	ShowHist           uint8
	PSolWidth          float64
	PSolHeight         float64
	LoftAng1           float64
	LoftAng2           float64
	LoftMag1           float64
	LoftMag2           float64
	LoftParam          int16
	LoftNormals        uint8
	Latitude           float64
	Longitude          float64
	NorthDirection     float64
	TimeZone           int32
	LightGlyphDisplay  uint8
	TileModeLightSynch uint8
	DwfFrame           uint8
	DgnFrame           uint8
	InterfereColor     bitstream.CmColor
	InterfereObjVS     bitstream.HandleRef
	InterfereVpVS      bitstream.HandleRef
	DragVS             bitstream.HandleRef
	CShadow            uint8
}
