package token

import (
	"fmt"
	"strings"
)

// Standard selects a revision of IEEE 1076 and therefore the reserved-word set.
type Standard uint16

const (
	Std1993 Standard = 1993
	Std2002 Standard = 2002
	Std2008 Standard = 2008
	Std2019 Standard = 2019

	DefaultStandard = Std2008
)

func (s Standard) String() string {
	return fmt.Sprintf("%d", uint16(s))
}

// ParseStandard accepts "93", "1993", "vhdl-2008" and similar spellings.
func ParseStandard(s string) (Standard, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "vhdl")
	v = strings.TrimLeft(v, "-_ ")
	switch v {
	case "":
		return DefaultStandard, nil
	case "93", "1993":
		return Std1993, nil
	case "02", "2002":
		return Std2002, nil
	case "08", "2008":
		return Std2008, nil
	case "19", "2019":
		return Std2019, nil
	}
	return 0, fmt.Errorf("unknown VHDL standard %q (expected 1993, 2002, 2008 or 2019)", s)
}

type keyword struct {
	kind  Kind
	since Standard
}

var keywords = map[string]keyword{
	"abs":                {KwAbs, Std1993},
	"access":             {KwAccess, Std1993},
	"after":              {KwAfter, Std1993},
	"alias":              {KwAlias, Std1993},
	"all":                {KwAll, Std1993},
	"and":                {KwAnd, Std1993},
	"architecture":       {KwArchitecture, Std1993},
	"array":              {KwArray, Std1993},
	"assert":             {KwAssert, Std1993},
	"assume":             {KwAssume, Std2008},
	"assume_guarantee":   {KwAssumeGuarantee, Std2008},
	"attribute":          {KwAttribute, Std1993},
	"begin":              {KwBegin, Std1993},
	"block":              {KwBlock, Std1993},
	"body":               {KwBody, Std1993},
	"buffer":             {KwBuffer, Std1993},
	"bus":                {KwBus, Std1993},
	"case":               {KwCase, Std1993},
	"component":          {KwComponent, Std1993},
	"configuration":      {KwConfiguration, Std1993},
	"constant":           {KwConstant, Std1993},
	"context":            {KwContext, Std2008},
	"cover":              {KwCover, Std2008},
	"default":            {KwDefault, Std2008},
	"disconnect":         {KwDisconnect, Std1993},
	"downto":             {KwDownto, Std1993},
	"else":               {KwElse, Std1993},
	"elsif":              {KwElsif, Std1993},
	"end":                {KwEnd, Std1993},
	"entity":             {KwEntity, Std1993},
	"exit":               {KwExit, Std1993},
	"fairness":           {KwFairness, Std2008},
	"file":               {KwFile, Std1993},
	"for":                {KwFor, Std1993},
	"force":              {KwForce, Std2008},
	"function":           {KwFunction, Std1993},
	"generate":           {KwGenerate, Std1993},
	"generic":            {KwGeneric, Std1993},
	"group":              {KwGroup, Std1993},
	"guarded":            {KwGuarded, Std1993},
	"if":                 {KwIf, Std1993},
	"impure":             {KwImpure, Std1993},
	"in":                 {KwIn, Std1993},
	"inertial":           {KwInertial, Std1993},
	"inout":              {KwInout, Std1993},
	"is":                 {KwIs, Std1993},
	"label":              {KwLabel, Std1993},
	"library":            {KwLibrary, Std1993},
	"linkage":            {KwLinkage, Std1993},
	"literal":            {KwLiteral, Std1993},
	"loop":               {KwLoop, Std1993},
	"map":                {KwMap, Std1993},
	"mod":                {KwMod, Std1993},
	"nand":               {KwNand, Std1993},
	"new":                {KwNew, Std1993},
	"next":               {KwNext, Std1993},
	"nor":                {KwNor, Std1993},
	"not":                {KwNot, Std1993},
	"null":               {KwNull, Std1993},
	"of":                 {KwOf, Std1993},
	"on":                 {KwOn, Std1993},
	"open":               {KwOpen, Std1993},
	"or":                 {KwOr, Std1993},
	"others":             {KwOthers, Std1993},
	"out":                {KwOut, Std1993},
	"package":            {KwPackage, Std1993},
	"parameter":          {KwParameter, Std2008},
	"port":               {KwPort, Std1993},
	"postponed":          {KwPostponed, Std1993},
	"private":            {KwPrivate, Std2019},
	"procedure":          {KwProcedure, Std1993},
	"process":            {KwProcess, Std1993},
	"property":           {KwProperty, Std2008},
	"protected":          {KwProtected, Std2002},
	"pure":               {KwPure, Std1993},
	"range":              {KwRange, Std1993},
	"record":             {KwRecord, Std1993},
	"register":           {KwRegister, Std1993},
	"reject":             {KwReject, Std1993},
	"release":            {KwRelease, Std2008},
	"rem":                {KwRem, Std1993},
	"report":             {KwReport, Std1993},
	"restrict":           {KwRestrict, Std2008},
	"restrict_guarantee": {KwRestrictGuarantee, Std2008},
	"return":             {KwReturn, Std1993},
	"rol":                {KwRol, Std1993},
	"ror":                {KwRor, Std1993},
	"select":             {KwSelect, Std1993},
	"sequence":           {KwSequence, Std2008},
	"severity":           {KwSeverity, Std1993},
	"shared":             {KwShared, Std1993},
	"signal":             {KwSignal, Std1993},
	"sla":                {KwSla, Std1993},
	"sll":                {KwSll, Std1993},
	"sra":                {KwSra, Std1993},
	"srl":                {KwSrl, Std1993},
	"strong":             {KwStrong, Std2008},
	"subtype":            {KwSubtype, Std1993},
	"then":               {KwThen, Std1993},
	"to":                 {KwTo, Std1993},
	"transport":          {KwTransport, Std1993},
	"type":               {KwType, Std1993},
	"unaffected":         {KwUnaffected, Std1993},
	"units":              {KwUnits, Std1993},
	"until":              {KwUntil, Std1993},
	"use":                {KwUse, Std1993},
	"variable":           {KwVariable, Std1993},
	"view":               {KwView, Std2019},
	"vmode":              {KwVmode, Std2008},
	"vprop":              {KwVprop, Std2008},
	"vunit":              {KwVunit, Std2008},
	"wait":               {KwWait, Std1993},
	"when":               {KwWhen, Std1993},
	"while":              {KwWhile, Std1993},
	"with":               {KwWith, Std1993},
	"xnor":               {KwXnor, Std1993},
	"xor":                {KwXor, Std1993},
}

// LookupKeyword classifies an already case-folded identifier spelling.
// Words reserved only by a later standard are ordinary identifiers under std.
func LookupKeyword(folded string, std Standard) (Kind, bool) {
	kw, ok := keywords[folded]
	if !ok || kw.since > std {
		return Ident, false
	}
	return kw.kind, true
}

// Keywords lists the reserved words of std in no particular order.
func Keywords(std Standard) []string {
	out := make([]string, 0, len(keywords))
	for w, kw := range keywords {
		if kw.since <= std {
			out = append(out, w)
		}
	}
	return out
}
