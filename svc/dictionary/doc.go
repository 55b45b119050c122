// Package dictionary provides the typed UI strings of the site.
//
// Tables live in translations/<locale>.yaml and are loaded through an
// i18n.Translator, so a key missing from a locale takes the default
// locale's value. Get never fails: unsupported locales get the default
// dictionary.
//
//	dicts, err := dictionary.New(ctx)
//	d := dicts.Get(i18n.KO)
//	fmt.Println(d.Common.Courses, d.Footer(2025))
package dictionary
