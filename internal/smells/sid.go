package smells

import "regexp"

// MasteringSIDValue and MouldSIDValue match IFPI SID codes after homoglyph
// and separator cleanup. Mastering codes start with an L.
var (
	MasteringSIDValue = regexp.MustCompile(`^\s*(?:ifpi)?\s*l\w{3,4}$`)
	MouldSIDValue     = regexp.MustCompile(`^\s*(?:ifpi)?\s*\w{4,5}$`)
)

// SIDIgnoreValues are values meaning "there is no SID code"; they are not
// format errors.
var SIDIgnoreValues = newSet(
	"none", "none.", "(none)", "[none]", "-none-", "none present",
	"none visible", "no", "n/a", "not present", "no sid", "without sid code",
)

// SIDWrongFormats are format names on which a SID code cannot occur; SID
// codes exist only on laser-read media.
var SIDWrongFormats = newSet(
	"Vinyl", "Cassette", "Shellac", "File",
	"VHS", "DCC", "Memory Stick", "Edison Disc",
)

// SIDFirstYear is the year the SID scheme was introduced; SID codes on
// releases before it point at a wrong year or a reissue entered wrong.
const SIDFirstYear = 1993

// GenericSIDDescriptions are descriptions that say "SID" without telling
// whether it is the mastering or the mould code.
var GenericSIDDescriptions = newSet(
	"source identification code", "sid", "sid code", "sid-code",
)

// MasteringSIDDescriptions are exact descriptions marking a value as a
// mastering SID code. Exact matches on purpose: prose like "near mastering
// SID code" must not trigger. Some entries differ only by a Cyrillic
// homoglyph.
var MasteringSIDDescriptions = newSet(
	"mastering sid code", "master sid code", "master sid",
	"masterung sid code", "mastrering sid code",
	"matering sid code", "sid code mastering",
	"sid code (mastering)", "sid code: mastering",
	"sid code [mastering]", "(sid code, mastering)",
	"sid code, mastering", "sid code - mastering",
	"sid-code, mastering", "sid code - mastering code",
	"sid code (mastering code)", "sid code: mastering code",
	"sid mastering code", "sid - mastering code",
	"sid (mastering code)", "sid mastetring code",
	"cd sid master", "cd sid mastering",
	"cd sid mastering code", "cd: sid mastering code",
	"cd, sid mastering code", "cd, sid - mastering code",
	"cds, mastering sid code", "mastered sid code",
	"masterd sid code", "masteirng sid code",
	"sid master code", "mastering sid codes", "mastering sid",
	"mastering sid-code", "sid master", "s.i.d. master code",
	"sid (master)", "sid mastering", "sid masterind code",
	"sid (mastering)", "cd1 mastering sid code",
	"cd2 mastering sid code", "mastering s.i.d. code",
	"mastering sid code cd2", "mastering sid code cd3",
	"cd mastering sid code", "the mastering sid code",
	"mastering sid code cd1", "mastering sid code dvd",
	"sid code mastering cd1", "sid mastering code cd 1",
	"sid mastering code cd1", "masterring sid code",
	"cd centre etching - sid mastering code",
	"mastering sid сode", "masterin sid code",
	"cd centre etching - mastering sid code",
	"sid mastering code cd2", "master s.i.d.",
	"master s.i.d. code",
)

// MouldSIDDescriptions are the mould counterpart of
// MasteringSIDDescriptions.
var MouldSIDDescriptions = newSet(
	"mould sid code", "mould sid", "mold sid", "mold sid code",
	"modul sid code", "moould sid code", "moudl sid code",
	"moud sid code", "moulded sid code", "mouldering sid-code",
	"moulding sid code", "mouldg sid code", "moulde sid code",
	"mould sid-code", "mould sid codes", "moul sid code",
	"muold sid code", "sid code mold", "sid code mould",
	"sid-code (mould)", "sid code: mould", "sid code, mould",
	"sid code - mould", "sid code (moild)", "sid code [mould]",
	"(sid code, mould)", "sid-code, mould", "sid code (mould)",
	"sid code - mould code", "sid code (mould code)",
	"sid code: mould code", "sid code moulded",
	"sid code (moulded)", "sid code, moulding",
	"sid code mould (inner ring)",
	"sid code (mould - inner ring)",
	"sid code (mould, inner ring)", "sid code mould - inner ring",
	"sid (mold code)", "sid mold code", "sid moul code",
	"sid mould", "sid - mould", "sid (mould)", "sid, mould",
	"sid - mould code", "sid mould code", "sid mould code cd1",
	"sid mould code cd 1", "sid mould code cd2",
	"sid mould code cd 2", "sid mould code disc 1",
	"sid mould code, disc 1", "sid mould code - disc 1",
	"sid mould code disc 2", "sid mould code, disc 2",
	"sid mould code - disc 2", "sid mould code disc 3",
	"sid mould code - disc 3", "sid mould code disc 4",
	"sid mould code disc 5", "sid mould disc 1",
	"sid mould disc 2", "sid mould disc 3", "sid mould disc 4",
	"sid mould disc 5", "sid mould disc 6", "sid muold code",
	"sid mouls code", "cd sid mould", "cd sid mould code",
	"cd, sid mould code", "cd, sid - mould code",
	"cds, mould sid code", "mould sid code cd1",
	"mould sid code cd2", "sid-code mould",
	"mould sid code, variant 1", "mould sid code, variant 2",
	"mould sid code dvd", "mould sid code - dvd",
	"mould sid code [dvd]", "mould sid code, dvd",
	"mould sid code (dvd)", "mould sid code cd", "mould sid-code",
	"dvd mould sid code", "dvd, mould sid code",
	"dvd (mould sid code)", "dvd - mould sid code",
	"cd1 mould sid code", "cd 1 mould sid code",
	"cd1 : mould sid code", "cd1, mould sid code",
	"cd2 mould sid code", "cd centre etching - mould sid code",
	"cd centre etching - sid mould code", "mould sid. code",
	"mould sid code, both discs", "cd mould (sid)",
	"cd mould sid", "cd mould sid code", "cd - mould sid code",
	"cd: mould sid code", "cd mould, sid code",
	"cd (mould sid code)", "cd, mould sid code",
	"disc 1 mould (sid)", "disc 1 mould sid code",
	"disc 1 (mould sid code)", "(disc 1) mould sid code",
	"disc 1 - mould sid code", "disc (1) - mould sid code",
	"disc 1 sid code moulded", "disc 1 sid mould",
	"disc 1 sid mould code", "disc 1 - sid mould code",
	"disc 2 mould sid code", "disc 2 (mould sid code)",
	"(disc 2) mould sid code", "disc (2) - mould sid code",
	"dvd sid mould code", "dvd: sid mould code",
	"dvd1 mould sid code", "dvd1 sid code mould",
	"dvd2 mould sid code", "dvd2 sid code mould",
	"mould sid code 1", "mould sid code 2",
	"mould sid code both discs", "mould sid code (both discs)",
	"mould sid code - cd1", "mould sid code, cd",
	"mould sid code cd 1", "mould sid code (cd1)",
	"mould sid code [cd]", "mould sid code cd1 & cd2",
	"mould sid code (cd 2)", "mould sid code (cd2)",
	"mould sid code - cd2", "mould sid code disc 2",
	"mould sid code dvd1", "mould s.i.d.", "mould s.i.d. code",
	"moulds.i.d. code", "s.i.d. mould code", "s.i.d. moulding code",
	"modul sid code (both discs)",
)
