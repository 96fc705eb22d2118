// Package picker is a headless country picker: the state and view model behind
// a modal country list with search.
//
// A [Picker] holds the country list (preferred countries first), the search
// query, visibility and the selected code. The embedding UI draws [Picker.View]
// and forwards user actions:
//
//	p := picker.New(countries,
//		picker.WithPreferred("AE", "GB", "US"),
//		picker.WithSelected("US"),
//		picker.WithLocale("fr"),
//		picker.OnSelect(func(c country.Country) { input.SetCountry(c.Code) }),
//	)
//	p.Open()
//	p.SetQuery("uni")
//	for _, it := range p.Items() {
//		fmt.Println(it.Country.Name, it.Selected)
//	}
//	p.Select("GB") // calls OnSelect, clears the query, closes
//
// Item text comes from an [ItemRenderer]; the default one prints the emoji
// flag, the name and the dial code.
//
// A Picker is not safe for concurrent use.
package picker
