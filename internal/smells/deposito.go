package smells

import "regexp"

// DepositoKeywords matches the many spellings of "depósito legal" seen in
// free text fields. All patterns expect lower case input. The misspellings
// were collected empirically from the data dump.
var DepositoKeywords = compileAll([]string{
	// the common spellings first
	`depósito legal`,
	`deposito legal`,
	`de?s?p*ós*i?r?tl?o?i?\s*l+e?g?al?\.?`,
	`des?p?os+ito?\s+legt?al?\.?`,
	`legal? des?posit`,
	`dep\.\s*legal`,
	`dip. legal`,
	`dip. leg.`,
	`dipòsit legal`,
	`dipósit legal`,
	`dep; legal`,
	// then a slew of misspellings and variants
	`deposito légal`,
	`deposito legál`,
	`depósito legl`,
	`depósito lgeal`,
	`depodito legal\.?`,
	`depòsito? legal\.?`,
	`déposito legal\.?`,
	`depós?tio legal\.?`,
	`dep\.?\s*legal\.?`,
	`d\.?\s*legal\.?`,
	`de?pto\.?\s*legal\.?`,
	`depótiso legal`,
	`depósitio legal`,
	`depósiti legal`,
	`deposrito legal`,
	`deoósito legal`,
	`depóaito legal`,
	`depõsito legal`,
	`depñosito legal`,
	`deposiro legal\.?`,
	`depósito légal`,
	`déposito légal`,
	`d\.\s*l\.`,
	`dep\.\s*leg\.`,
	`dep.\s*l.`,
	`deposito lagal`,
	`depósito lagal`,
	`depósito degal`,
	`depósito leagal`,
	`depóosito legal`,
	`depósite legal`,
	`sepósito legal`,
	`deopósito legal`,
	`depásito legal`,
	`depôsito legal`,
	`depỏsito legal`,
	`dep'osito legal`,
	`legak des?posit`,
	`legai des?posit`,
	`legal depos?t`,
	`legal dep\.`,
	// basque form
	`l\.g\.`,
})

// DepositoValues matches the registration number itself: province code,
// serial, separator, two or four digit year. Two historical eras are
// covered: the single-letter province codes used before the 1958 format
// change and the two-letter codes used after.
var DepositoValues = compileAll([]string{
	`[abcjlmopstvz][\s\.\-/_:]\s*\d{0,2}\.?\d{2,3}\s*[\-\./_]\s*(?:19|20)?\d{2}`,
	`(?:ab|al|as|av|ba|bi|bu|cc|ca|co|cr|cs|gc|gi|gr|gu|hu|le|lr|lu|ma|mu|na|or|pm|po|sa|se|sg|so|ss|s\.\s.|te|tf|t\.f\.|to|va|vi|za)[\s\.\-/_:]\s*\d{0,2}\.?\d{2,3}\s*[\-\./_]\s*(?:19|20)?\d{2}`,
})

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// ContainsDepositoKeyword reports whether lower-cased text mentions depósito
// legal in any known spelling.
func ContainsDepositoKeyword(lower string) bool {
	for _, re := range DepositoKeywords {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// ContainsDepositoValue reports whether lower-cased text contains something
// shaped like a depósito legal registration number.
func ContainsDepositoValue(lower string) bool {
	for _, re := range DepositoValues {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// HasDepositoValuePrefix reports whether lower-cased text starts with a
// depósito legal registration number. Used for identifier values, where the
// number is the whole field rather than buried in prose.
func HasDepositoValuePrefix(lower string) bool {
	for _, re := range DepositoValues {
		if loc := re.FindStringIndex(lower); loc != nil && loc[0] == 0 {
			return true
		}
	}
	return false
}
