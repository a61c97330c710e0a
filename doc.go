// Package dwg decodes the structural layer of DWG drawing files.
//
// A decode runs in two phases. ReadFileHeader classifies the file and reads
// its fixed header: the section locator table of R13-R2000 files, or the
// encrypted page directory of R2004 and later files. ReadBody then locates the
// logical sections, expands section pages where the format uses them, and
// decodes the header variables, the class table, the object map, the template
// and the preview directory. Decode runs both phases.
//
// # Basic Usage
//
//	doc, err := dwg.DecodeFile("plan.dwg", dwg.WithChecksum(checksum.DWG()))
//	if err != nil {
//	    var de *errs.DecodeError
//	    if errors.As(err, &de) {
//	        log.Printf("%s failed at 0x%X", de.Component, de.Offset)
//	    }
//	    return err
//	}
//	fmt.Println(doc.Version, doc.Classes.Len(), doc.ObjectMap.Len())
//
// Classifying a file without decoding it:
//
//	ver, err := dwg.DetectVersion(f)
//
// # Retained Sections
//
// The raw bytes of every logical section read during a decode are kept in the
// Document, compressed with the codec selected by WithRetention, and can be
// fetched with Document.SectionBytes.
//
// # Supported Revisions
//
// R13, R14, R2000, R2004, R2010, R2013 and R2018. R2007 files are recognized
// by DetectVersion but their container is not decoded.
//
// Decoding is all or nothing: any structural failure aborts the decode with a
// *errs.DecodeError naming the component and byte offset.
package dwg
