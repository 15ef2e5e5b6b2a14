// Package hvscmeta reads the metadata of the High Voltage SID Collection
// (HVSC): PSID/RSID file headers, the SID Tune Information List
// (DOCUMENTS/STIL.txt), the bug list (DOCUMENTS/BUGlist.txt) and the song
// length database (DOCUMENTS/Songlengths.md5).
//
// # Quick Start
//
// Reading the header of a SID file:
//
//	file, err := hvscmeta.Open("Commando.sid")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s by %s (%s)\n", file.Header.Name, file.Header.Author, file.Header.Released)
//
// Looking up everything the collection knows about a tune:
//
//	coll, err := hvscmeta.OpenCollection("/data/C64Music")
//	if err != nil {
//		log.Fatal(err)
//	}
//	tune, err := coll.Tune("/data/C64Music/MUSICIANS/H/Hubbard_Rob/Commando.sid")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for n, field := range tune.Info.Fields() {
//		fmt.Printf("#%d %s: %s\n", n, field.Kind, field.Text)
//	}
//
// # Catalog keys
//
// STIL.txt and BUGlist.txt are keyed by the path of a SID file relative to
// the collection root, with forward slashes and a leading slash:
//
//	/MUSICIANS/H/Hubbard_Rob/Commando.sid
//
// Songlengths.md5 is keyed by the MD5 digest of the file contents.
// Collection.Key turns file system paths into catalog keys.
//
// # Lookups
//
// The text databases are scanned from the start for every lookup; nothing is
// indexed or kept in memory between calls. Every lookup opens and closes its
// own file handle, so lookups may run concurrently. LookupMany does that for
// a batch of files.
//
// # Error Handling
//
// Failures are typed and can be tested with errors.Is and errors.As:
//
//   - *IOError: a file could not be opened or read
//   - *InvalidFormatError (ErrInvalidFormat): a malformed SID header
//   - *NotFoundError (ErrNotFound): a key has no entry
//   - *ParseError (ErrParse): a malformed song length or, in strict mode, a
//     malformed title timestamp
//
// A missing entry is not a failure of the collection: Tune leaves the
// corresponding field nil instead of returning ErrNotFound.
package hvscmeta
