package smells

// Plant is a pressing or replication plant with the year it started
// production. A release pressed there cannot predate that year.
type Plant struct {
	CompanyID int64
	Name      string
	FirstYear int
	// CDOnly limits the check to CD releases; these plants also acted as
	// distributors, which causes false positives on other formats.
	CDOnly bool
}

// Plants maps known plant company ids to founding years, collected from the
// Discogs label pages of the plants themselves.
var Plants = []Plant{
	{CompanyID: 358102, Name: "PDO, USA", FirstYear: 1986},
	{CompanyID: 360848, Name: "PMDC, USA", FirstYear: 1992},
	{CompanyID: 266782, Name: "UML", FirstYear: 1999},
	{CompanyID: 381697, Name: "EDC, USA", FirstYear: 2005},
	{CompanyID: 358025, Name: "PDO, Germany", FirstYear: 1986},
	{CompanyID: 342158, Name: "PMDC, Germany", FirstYear: 1993},
	{CompanyID: 331548, Name: "Universal, M & L, Germany", FirstYear: 1999},
	{CompanyID: 384133, Name: "EDC, Germany", FirstYear: 2005},
	{CompanyID: 265455, Name: "PMDC, France", FirstYear: 1992},
	{CompanyID: 7207, Name: "Dureco", FirstYear: 1987, CDOnly: true},
	{CompanyID: 300888, Name: "Microservice", FirstYear: 1987, CDOnly: true},
	{CompanyID: 56025, Name: "MPO", FirstYear: 1984, CDOnly: true},
	{CompanyID: 93218, Name: "Nimbus", FirstYear: 1984, CDOnly: true},
	{CompanyID: 147881, Name: "Mayking", FirstYear: 1985, CDOnly: true},
	{CompanyID: 266256, Name: "EMI Uden", FirstYear: 1989, CDOnly: true},
	{CompanyID: 291934, Name: "WEA Mfg Olyphant", FirstYear: 1996, CDOnly: true},
	{CompanyID: 271323, Name: "Opti.Me.S", FirstYear: 1986, CDOnly: true},
}

// LabelFirstYears are record labels that did not exist before a given year;
// seeing them on earlier releases means the label or the year is wrong.
var LabelFirstYears = []Plant{
	{CompanyID: 205, Name: "Fontana", FirstYear: 1957},
	{CompanyID: 7704, Name: "Philips", FirstYear: 1950},
}

// PDMCTypos are matrix strings using the common PDMC transposition of PMDC.
var PDMCTypos = []string{
	"MADE IN USA BY PDMC",
	"MADE IN GERMANY BY PDMC",
	"MADE IN FRANCE BY PDMC",
	"PDMC FRANCE",
}
