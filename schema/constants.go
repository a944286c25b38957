package schema

// Custom string types for type safety.
type (
	// Domain represents one tracked health category.
	Domain string

	// Strategy represents the temporal aggregation strategy of a domain.
	Strategy string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot storage.
	DatabaseBackend string

	// SleepTrend classifies the week-over-week sleep direction.
	SleepTrend string
)

// All tracked domains. The first six are scored from questionnaire
// histories; mental, sleep and productivity are declared placeholders
// that participate in the composite index with a local score of zero
// until their collectors exist.
const (
	DomainWorkspace    Domain = "workspace"
	DomainEye          Domain = "eye"
	DomainHydration    Domain = "hydration"
	DomainMSK          Domain = "msk"
	DomainBaseline     Domain = "baseline"
	DomainLongitudinal Domain = "longitudinal"
	DomainMental       Domain = "mental"
	DomainSleep        Domain = "sleep"
	DomainProductivity Domain = "productivity"
)

// All aggregation strategies supported.
const (
	RecencyStrategy  Strategy = "recency"  // last 5 entries, spike-protected weighted average
	SlowStrategy     Strategy = "slow"     // last 3 entries, plain weighted average
	SnapshotStrategy Strategy = "snapshot" // latest entry only
	TrendStrategy    Strategy = "trend"    // latest entry blended with lab-marker trend penalty
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All sleep trend classifications.
const (
	TrendImproving SleepTrend = "improving"
	TrendWorsening SleepTrend = "worsening"
	TrendStable    SleepTrend = "stable"
)

// ScoredDomains lists the domains with an entry scorer, in display order.
var ScoredDomains = []Domain{
	DomainMSK,
	DomainEye,
	DomainHydration,
	DomainWorkspace,
	DomainBaseline,
	DomainLongitudinal,
}

// AllDomains lists every declared domain, scored or placeholder.
var AllDomains = []Domain{
	DomainMental,
	DomainSleep,
	DomainMSK,
	DomainEye,
	DomainHydration,
	DomainWorkspace,
	DomainBaseline,
	DomainLongitudinal,
	DomainProductivity,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSnapshotBackends lists all valid snapshot backends.
var ValidSnapshotBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
