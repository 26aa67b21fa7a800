// Package lexicon carries the curated reference vocabulary of computer
// science and data engineering terminology. Matches against this list are
// high confidence by definition, regardless of how often they occur.
package lexicon

// ReferenceTerm is one curated English term with its known Estonian
// equivalents. Hints are matched against Estonian abstracts so a thesis
// written only in Estonian still surfaces the English candidate.
type ReferenceTerm struct {
	EN       string
	ET       []string
	Category string
}

var terms = []ReferenceTerm{
	// Core data engineering.
	{EN: "data pipeline", ET: []string{"andmetorustik", "andmekonveier"}, Category: "data-engineering"},
	{EN: "data warehouse", ET: []string{"andmeladu"}, Category: "data-engineering"},
	{EN: "data lake", ET: []string{"andmejärv"}, Category: "data-engineering"},
	{EN: "data mart", Category: "data-engineering"},
	{EN: "data model", ET: []string{"andmemudel"}, Category: "data-engineering"},
	{EN: "data modeling", ET: []string{"andmemodelleerimine"}, Category: "data-engineering"},
	{EN: "data integration", ET: []string{"andmete integreerimine"}, Category: "data-engineering"},
	{EN: "data quality", ET: []string{"andmekvaliteet"}, Category: "data-engineering"},
	{EN: "data governance", ET: []string{"andmehaldus"}, Category: "data-engineering"},
	{EN: "data lineage", ET: []string{"andmepäritolu"}, Category: "data-engineering"},
	{EN: "data catalog", ET: []string{"andmekataloog"}, Category: "data-engineering"},
	{EN: "master data", ET: []string{"põhiandmed"}, Category: "data-engineering"},
	{EN: "metadata", ET: []string{"metaandmed"}, Category: "data-engineering"},
	{EN: "etl", Category: "data-engineering"},
	{EN: "batch processing", ET: []string{"pakktöötlus"}, Category: "data-engineering"},
	{EN: "stream processing", ET: []string{"vootöötlus"}, Category: "data-engineering"},
	{EN: "real-time processing", ET: []string{"reaalajatöötlus"}, Category: "data-engineering"},
	{EN: "message queue", ET: []string{"sõnumijärjekord"}, Category: "data-engineering"},
	{EN: "change data capture", Category: "data-engineering"},

	// Databases.
	{EN: "relational database", ET: []string{"relatsiooniline andmebaas"}, Category: "databases"},
	{EN: "database management system", ET: []string{"andmebaasihaldussüsteem"}, Category: "databases"},
	{EN: "query optimization", ET: []string{"päringu optimeerimine"}, Category: "databases"},
	{EN: "indexing", ET: []string{"indekseerimine"}, Category: "databases"},
	{EN: "transaction", ET: []string{"transaktsioon"}, Category: "databases"},
	{EN: "normalization", ET: []string{"normaliseerimine"}, Category: "databases"},
	{EN: "sharding", Category: "databases"},
	{EN: "replication", ET: []string{"replikeerimine"}, Category: "databases"},
	{EN: "nosql", Category: "databases"},

	// Machine learning and statistics.
	{EN: "machine learning", ET: []string{"masinõpe"}, Category: "machine-learning"},
	{EN: "deep learning", ET: []string{"süvaõpe"}, Category: "machine-learning"},
	{EN: "neural network", ET: []string{"närvivõrk", "tehisnärvivõrk"}, Category: "machine-learning"},
	{EN: "supervised learning", ET: []string{"juhendatud õpe"}, Category: "machine-learning"},
	{EN: "unsupervised learning", ET: []string{"juhendamata õpe"}, Category: "machine-learning"},
	{EN: "reinforcement learning", ET: []string{"stiimulõpe"}, Category: "machine-learning"},
	{EN: "natural language processing", ET: []string{"loomuliku keele töötlus"}, Category: "machine-learning"},
	{EN: "computer vision", ET: []string{"masinnägemine"}, Category: "machine-learning"},
	{EN: "classification", ET: []string{"klassifitseerimine"}, Category: "machine-learning"},
	{EN: "clustering", ET: []string{"klasterdamine"}, Category: "machine-learning"},
	{EN: "regression", ET: []string{"regressioon"}, Category: "machine-learning"},
	{EN: "anomaly detection", ET: []string{"anomaaliate tuvastamine"}, Category: "machine-learning"},
	{EN: "overfitting", ET: []string{"ülesobitumine"}, Category: "machine-learning"},
	{EN: "cross-validation", ET: []string{"ristvalideerimine"}, Category: "machine-learning"},
	{EN: "artificial intelligence", ET: []string{"tehisintellekt"}, Category: "machine-learning"},
	{EN: "large language model", ET: []string{"suur keelemudel"}, Category: "machine-learning"},
	{EN: "data mining", ET: []string{"andmekaeve"}, Category: "machine-learning"},
	{EN: "time series", ET: []string{"aegrida", "aegread"}, Category: "machine-learning"},
	{EN: "hypothesis testing", ET: []string{"hüpoteeside kontroll"}, Category: "machine-learning"},

	// Software engineering.
	{EN: "software architecture", ET: []string{"tarkvaraarhitektuur"}, Category: "software-engineering"},
	{EN: "microservices", ET: []string{"mikroteenused"}, Category: "software-engineering"},
	{EN: "continuous integration", ET: []string{"pidev integratsioon"}, Category: "software-engineering"},
	{EN: "continuous delivery", ET: []string{"pidev tarnimine"}, Category: "software-engineering"},
	{EN: "version control", ET: []string{"versioonihaldus"}, Category: "software-engineering"},
	{EN: "unit testing", ET: []string{"ühiktestimine"}, Category: "software-engineering"},
	{EN: "code review", ET: []string{"koodi ülevaatus"}, Category: "software-engineering"},
	{EN: "technical debt", ET: []string{"tehniline võlg"}, Category: "software-engineering"},
	{EN: "design pattern", ET: []string{"disainimuster"}, Category: "software-engineering"},
	{EN: "refactoring", ET: []string{"refaktoreerimine"}, Category: "software-engineering"},
	{EN: "api gateway", Category: "software-engineering"},
	{EN: "containerization", ET: []string{"konteineriseerimine"}, Category: "software-engineering"},

	// Systems and infrastructure.
	{EN: "distributed system", ET: []string{"hajussüsteem"}, Category: "systems"},
	{EN: "cloud computing", ET: []string{"pilvandmetöötlus"}, Category: "systems"},
	{EN: "edge computing", ET: []string{"servtöötlus"}, Category: "systems"},
	{EN: "load balancing", ET: []string{"koormuse jaotamine"}, Category: "systems"},
	{EN: "fault tolerance", ET: []string{"tõrketaluvus"}, Category: "systems"},
	{EN: "scalability", ET: []string{"skaleeruvus"}, Category: "systems"},
	{EN: "virtualization", ET: []string{"virtualiseerimine"}, Category: "systems"},
	{EN: "operating system", ET: []string{"operatsioonisüsteem"}, Category: "systems"},
	{EN: "concurrency", ET: []string{"samaaegsus"}, Category: "systems"},
	{EN: "caching", ET: []string{"vahemälu"}, Category: "systems"},

	// Security.
	{EN: "encryption", ET: []string{"krüpteerimine"}, Category: "security"},
	{EN: "authentication", ET: []string{"autentimine"}, Category: "security"},
	{EN: "authorization", ET: []string{"autoriseerimine"}, Category: "security"},
	{EN: "penetration testing", ET: []string{"läbistustestimine"}, Category: "security"},
	{EN: "access control", ET: []string{"juurdepääsu kontroll"}, Category: "security"},
	{EN: "cybersecurity", ET: []string{"küberturvalisus"}, Category: "security"},
}

// Terms returns the full curated vocabulary.
func Terms() []ReferenceTerm {
	return terms
}
