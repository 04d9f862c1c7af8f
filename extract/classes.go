package extract

// Short descriptions for the Nice classification classes the source gazettes
// most commonly carry. Everything else falls back to the bare class number.
var classDescriptions = map[string]string{
	"1": "Bahan kimia untuk industri",
	"2": "Cat, pewarna, bahan penyamak",
	"3": "Kosmetik, sabun, minyak wangi",
	"4": "Oli, pelumas, bahan bakar",
	"5": "Obat-obatan, bahan medis",
}

// classDescription returns a short description for a goods/services class.
func classDescription(class string) string {
	if desc, ok := classDescriptions[class]; ok {
		return desc
	}
	return "Kelas " + class
}
