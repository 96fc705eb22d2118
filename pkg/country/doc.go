// Package country builds locale-aware country directories from calling-code metadata.
//
// A [Directory] lists every region the metadata knows a calling code for, names
// each one for the requested locale and sorts the result with that locale's
// collation. Snapshots are computed lazily, once per locale, and shared
// read-only afterwards; concurrent first calls for the same locale collapse
// into a single computation.
//
// # Basic Usage
//
//	dir := country.New()
//	all := dir.List("en")
//	us, ok := dir.ByCode("US", "en")
//	ca, ok := dir.ByDialCode("1", "en") // first "+1" country in directory order
//
// # Name Resolution
//
// Names resolve from the locale's table (keyed by language subtag, so "es-MX"
// uses "es"), then the canonical English table, then the ISO code itself.
// Tables are embedded YAML and may be replaced or extended:
//
//	dir := country.New(country.WithNamesFS(os.DirFS("./names")))
//
// # List Shaping
//
// [Filter] and [SortWithPreferred] are pure functions over any country slice:
//
//	cs := country.Filter(dir.List("en"), []string{"US", "GB", "CA"}, []string{"US"})
//	cs = country.SortWithPreferred(cs, []string{"CA"})
package country
