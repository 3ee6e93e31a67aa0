package chronic

import (
	"github.com/musicmunky/chronic/utils/cache"
	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// atom is one element of a grammar pattern: a required tag kind, an optional
// tag kind, or a reference to a named sub-grammar.
type atom struct {
	kind     tag.Kind
	optional bool
	grammar  string // sub-grammar name when non-empty
}

func req(kind tag.Kind) atom  { return atom{kind: kind} }
func opt(kind tag.Kind) atom  { return atom{kind: kind, optional: true} }
func sub(name string) atom    { return atom{grammar: name} }
func subOpt(name string) atom { return atom{grammar: name, optional: true} }

// handlerFn interprets the matched (and separator-filtered) tokens into a
// span, or nil when the combination turns out to be impossible.
type handlerFn func(tokens []*tag.Token, o *Options) *span.Span

// definition pairs a pattern with its handler.
type definition struct {
	name    string
	atoms   []atom
	handler handlerFn
}

// definitionSet maps list names (date, endian, anchor, arrow, narrow, time)
// to their ordered pattern definitions.
type definitionSet map[string][]definition

// definitionsCache memoizes the definition tables by the leading endian
// value, so option changes between calls always see the right table.
var definitionsCache, _ = cache.NewLRU[Endian, definitionSet](2)

// definitions returns the definition table for the given options.
func definitions(o *Options) definitionSet {
	leading := o.EndianPrecedence[0]
	return definitionsCache.GetOrAdd(leading, func() definitionSet {
		return buildDefinitions(leading)
	})
}

// buildDefinitions constructs the pattern catalogue. Within each list the
// order is significant: the first fully matching pattern wins.
func buildDefinitions(leading Endian) definitionSet {
	defs := definitionSet{
		"time": {
			{name: "time", atoms: []atom{req(tag.KindRepeaterTime), opt(tag.KindRepeaterDayPortion)}},
		},
		"date": {
			{
				name: "rdn_rmn_sd_t_tz_sy",
				atoms: []atom{
					req(tag.KindRepeaterDayName), req(tag.KindRepeaterMonthName), req(tag.KindScalarDay),
					req(tag.KindRepeaterTime), req(tag.KindTimeZone), req(tag.KindScalarYear),
				},
				handler: handleRdnRmnSdTTzSy,
			},
			{
				name: "rdn_rmn_sd",
				atoms: []atom{
					req(tag.KindRepeaterDayName), req(tag.KindRepeaterMonthName), req(tag.KindScalarDay),
				},
				handler: handleRdnRmnSd,
			},
			{
				name: "rmn_sd_sy",
				atoms: []atom{
					req(tag.KindRepeaterMonthName), req(tag.KindScalarDay), opt(tag.KindSeparatorComma),
					req(tag.KindScalarYear), opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleRmnSdSy,
			},
			{
				name: "rmn_od_sy",
				atoms: []atom{
					req(tag.KindRepeaterMonthName), req(tag.KindOrdinalDay), opt(tag.KindSeparatorComma),
					req(tag.KindScalarYear),
				},
				handler: handleRmnOdSy,
			},
			{
				name: "od_rmn_sy",
				atoms: []atom{
					req(tag.KindOrdinalDay), req(tag.KindRepeaterMonthName), opt(tag.KindSeparatorComma),
					req(tag.KindScalarYear),
				},
				handler: handleOdRmnSy,
			},
			{
				name: "rmn_sd",
				atoms: []atom{
					req(tag.KindRepeaterMonthName), req(tag.KindScalarDay),
					opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleRmnSd,
			},
			{
				name: "rmn_od",
				atoms: []atom{
					req(tag.KindRepeaterMonthName), req(tag.KindOrdinalDay),
					opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleRmnOd,
			},
			{
				name: "od_rmn",
				atoms: []atom{
					req(tag.KindOrdinalDay), req(tag.KindRepeaterMonthName),
					opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleOdRmn,
			},
			{
				name: "rmn_sd_on",
				atoms: []atom{
					req(tag.KindRepeaterTime), opt(tag.KindRepeaterDayPortion), opt(tag.KindSeparatorOn),
					req(tag.KindRepeaterMonthName), req(tag.KindScalarDay),
				},
				handler: handleRmnSdOn,
			},
			{
				name: "rmn_od_on",
				atoms: []atom{
					req(tag.KindRepeaterTime), opt(tag.KindRepeaterDayPortion), opt(tag.KindSeparatorOn),
					req(tag.KindRepeaterMonthName), req(tag.KindOrdinalDay),
				},
				handler: handleRmnOdOn,
			},
			{
				name: "sd_rmn_sy",
				atoms: []atom{
					req(tag.KindScalarDay), req(tag.KindRepeaterMonthName), req(tag.KindScalarYear),
					opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleSdRmnSy,
			},
			{
				name: "sd_rmn",
				atoms: []atom{
					req(tag.KindScalarDay), req(tag.KindRepeaterMonthName),
					opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleSdRmn,
			},
			{
				name:    "rmn_sy",
				atoms:   []atom{req(tag.KindRepeaterMonthName), req(tag.KindScalarYear)},
				handler: handleRmnSy,
			},
			{
				name: "sy_sm_sd",
				atoms: []atom{
					req(tag.KindScalarYear), req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarMonth),
					req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarDay),
					opt(tag.KindSeparatorAt), subOpt("time"),
				},
				handler: handleSySmSd,
			},
			{
				name: "sm_sy",
				atoms: []atom{
					req(tag.KindScalarMonth), req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarYear),
				},
				handler: handleSmSy,
			},
		},
		"anchor": {
			{
				name: "r",
				atoms: []atom{
					opt(tag.KindGrabber), req(tag.KindRepeater), opt(tag.KindSeparatorAt),
					opt(tag.KindRepeater), opt(tag.KindRepeater),
				},
				handler: handleR,
			},
			{
				name: "r_r",
				atoms: []atom{
					opt(tag.KindGrabber), req(tag.KindRepeater), req(tag.KindRepeater),
					opt(tag.KindSeparatorAt), opt(tag.KindRepeater), opt(tag.KindRepeater),
				},
				handler: handleR,
			},
			{
				name:    "r_g_r",
				atoms:   []atom{req(tag.KindRepeater), req(tag.KindGrabber), req(tag.KindRepeater)},
				handler: handleRGR,
			},
		},
		"arrow": {
			{
				name:    "s_r_p",
				atoms:   []atom{req(tag.KindScalar), req(tag.KindRepeater), req(tag.KindPointer)},
				handler: handleSRP,
			},
			{
				name:    "p_s_r",
				atoms:   []atom{req(tag.KindPointer), req(tag.KindScalar), req(tag.KindRepeater)},
				handler: handlePSR,
			},
			{
				name: "s_r_p_a",
				atoms: []atom{
					req(tag.KindScalar), req(tag.KindRepeater), req(tag.KindPointer), sub("anchor"),
				},
				handler: handleSRPA,
			},
		},
		"narrow": {
			{
				name: "o_r_s_r",
				atoms: []atom{
					req(tag.KindOrdinal), req(tag.KindRepeater), req(tag.KindSeparatorIn), req(tag.KindRepeater),
				},
				handler: handleORSR,
			},
			{
				name: "o_r_g_r",
				atoms: []atom{
					req(tag.KindOrdinal), req(tag.KindRepeater), req(tag.KindGrabber), req(tag.KindRepeater),
				},
				handler: handleORGR,
			},
		},
	}

	middle := []definition{
		{
			name: "sm_sd_sy",
			atoms: []atom{
				req(tag.KindScalarMonth), req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarDay),
				req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarYear),
				opt(tag.KindSeparatorAt), subOpt("time"),
			},
			handler: handleSmSdSy,
		},
		{
			name: "sm_sd",
			atoms: []atom{
				req(tag.KindScalarMonth), req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarDay),
				opt(tag.KindSeparatorAt), subOpt("time"),
			},
			handler: handleSmSd,
		},
	}
	little := []definition{
		{
			name: "sd_sm_sy",
			atoms: []atom{
				req(tag.KindScalarDay), req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarMonth),
				req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarYear),
				opt(tag.KindSeparatorAt), subOpt("time"),
			},
			handler: handleSdSmSy,
		},
		{
			name: "sd_sm",
			atoms: []atom{
				req(tag.KindScalarDay), req(tag.KindSeparatorSlashOrDash), req(tag.KindScalarMonth),
				opt(tag.KindSeparatorAt), subOpt("time"),
			},
			handler: handleSdSm,
		},
	}

	if leading == EndianLittle {
		defs["endian"] = append(little, middle...)
	} else {
		defs["endian"] = append(middle, little...)
	}

	return defs
}
