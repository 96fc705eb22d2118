// Package i18n provides the localized labels of the phone input and its country
// picker, together with right-to-left detection.
//
// A [Catalog] is immutable after construction and safe for concurrent use. The
// built-in catalog ships labels for en, ar, es, fr, de, pt, ru, zh, ja and hi.
//
// # Basic Usage
//
//	s := i18n.GetStrings("fr-CA")
//	fmt.Println(s.SearchPlaceholder) // "Rechercher des pays..."
//
//	i18n.IsRTL("ar-EG") // true
//
// # Language Resolution
//
// Locale tags are reduced to their language subtag: the part before the first
// hyphen, lowercased ("pt-BR" -> "pt"). Unknown languages fall back to the
// default language ("en" unless configured otherwise). Labels missing from a
// language file fall back field by field to the default language.
//
// # Custom Catalogs
//
// Labels can be overridden or extended from code or from files in an fs.FS:
//
//	//go:embed labels
//	var labelsFS embed.FS
//
//	sub, _ := fs.Sub(labelsFS, "labels")
//	cat, err := i18n.New(
//		i18n.WithYAMLDir(sub), // {lang}.yaml
//		i18n.WithStrings("it", i18n.Strings{SearchPlaceholder: "Cerca paesi..."}),
//		i18n.WithRTLLanguages("ar", "he", "fa", "ur", "ps"),
//	)
//
// File convention: {lang}.json or {lang}.yaml/.yml with snake_case keys.
package i18n
