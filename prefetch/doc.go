// Package prefetch decodes Windows Prefetch (SCCA) files stored inside the
// MAM compression wrapper used since Windows 10.
//
// The pipeline is strictly linear and single-pass: the 8-byte wrapper header
// is parsed and its magic checked, the Xpress-Huffman payload is handed to a
// Decompressor, and the decompressed buffer is walked structure by structure
// (file header, file information header, volume entries, directory strings).
// Only format version 31 is handled; other versions are rejected with
// an unsupported-version error rather than misparsed.
//
//	f, err := prefetch.Open("CALC.EXE-AC08706A.pf")
//	if err != nil { ... }
//	defer f.Close()
//	p, err := f.Parse(prefetch.SystemDecompressor())
//	if err != nil { ... }
//	fmt.Println(p.Header.ExecutableFilename, p.Info.RunCount)
//
// Every parsed record either copies small fixed fields out of the
// decompressed buffer or holds decoded strings; nothing aliases the caller's
// input after Parse returns.
package prefetch
