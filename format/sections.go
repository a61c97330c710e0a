package format

import "strconv"

// SectionKind numbers the sections listed in the legacy (R13-R2000) file header.
type SectionKind uint8

const (
	SectionHeaderVars SectionKind = 0
	SectionClasses    SectionKind = 1
	SectionObjectMap  SectionKind = 2
	SectionUnknown    SectionKind = 3
	SectionMeasure    SectionKind = 4
)

// Logical section names used by the R2004 section map.
const (
	NameHeader       = "AcDb:Header"
	NameClasses      = "AcDb:Classes"
	NameHandles      = "AcDb:Handles"
	NameTemplate     = "AcDb:Template"
	NameObjects      = "AcDb:AcDbObjects"
	NameObjFreeSpace = "AcDb:ObjFreeSpace"
	NameAuxHeader    = "AcDb:AuxHeader"
	NamePreview      = "AcDb:Preview"
	NameSummaryInfo  = "AcDb:SummaryInfo"
	NameAppInfo      = "AcDb:AppInfo"
	NameFileDepList  = "AcDb:FileDepList"
	NameRevHistory   = "AcDb:RevHistory"
	NameSecurity     = "AcDb:Security"
	NameVBAProject   = "AcDb:VBAProject"
	NameSignature    = "AcDb:Signature"
)

// Name returns the logical section name that corresponds to a legacy section number.
func (k SectionKind) Name() string {
	switch k {
	case SectionHeaderVars:
		return NameHeader
	case SectionClasses:
		return NameClasses
	case SectionObjectMap:
		return NameHandles
	case SectionUnknown:
		return "AcDb:Unknown"
	case SectionMeasure:
		return NameTemplate
	default:
		return "AcDb:Section" + strconv.Itoa(int(k))
	}
}

func (k SectionKind) String() string {
	switch k {
	case SectionHeaderVars:
		return "HeaderVars"
	case SectionClasses:
		return "Classes"
	case SectionObjectMap:
		return "ObjectMap"
	case SectionUnknown:
		return "Unknown"
	case SectionMeasure:
		return "Measurement"
	default:
		return "Invalid"
	}
}
