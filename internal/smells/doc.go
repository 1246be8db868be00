// Package smells holds the static rule tables the checks are built on:
// compiled patterns for identifier grammars, known vocabularies (rights
// societies, SPARS codes) and the empirically collected misspellings used to
// spot data hiding in the wrong field. Tables are initialized once and never
// mutated during a scan.
package smells
