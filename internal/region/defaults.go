package region

// defaults is the compiled-in region table, matching the listing pages
// currently published on 19hz.info. The check-regions command reports any
// listing page on the site that is missing from this table.
var defaults = []Region{
	{Key: "bayarea", Name: "San Francisco Bay Area / Northern California", Filename: "eventlisting_BayArea.php"},
	{Key: "la", Name: "Los Angeles / Southern California", Filename: "eventlisting_LosAngeles.php"},
	{Key: "seattle", Name: "Seattle", Filename: "eventlisting_Seattle.php"},
	{Key: "atlanta", Name: "Atlanta", Filename: "eventlisting_Atlanta.php"},
	{Key: "miami", Name: "Miami", Filename: "eventlisting_Miami.php"},
	{Key: "dc", Name: "Washington, DC / Maryland / Virginia", Filename: "eventlisting_DC.php"},
	{Key: "texas", Name: "Texas", Filename: "eventlisting_Texas.php"},
	{Key: "philadelphia", Name: "Philadelphia", Filename: "eventlisting_PHL.php"},
	{Key: "toronto", Name: "Toronto", Filename: "eventlisting_Toronto.php"},
	{Key: "iowa", Name: "Iowa / Nebraska", Filename: "eventlisting_Iowa.php"},
	{Key: "denver", Name: "Denver", Filename: "eventlisting_Denver.php"},
	{Key: "chicago", Name: "Chicago", Filename: "eventlisting_CHI.php"},
	{Key: "detroit", Name: "Detroit", Filename: "eventlisting_Detroit.php"},
	{Key: "massachusetts", Name: "Massachusetts", Filename: "eventlisting_Massachusetts.php"},
	{Key: "lasvegas", Name: "Las Vegas", Filename: "eventlisting_LasVegas.php"},
	{Key: "phoenix", Name: "Phoenix", Filename: "eventlisting_Phoenix.php"},
	{Key: "oregon", Name: "Portland / Oregon", Filename: "eventlisting_ORE.php"},
	{Key: "bc", Name: "Vancouver / British Columbia", Filename: "eventlisting_BC.php"},
}

// DefaultRegistry returns a registry with the compiled-in region table.
func DefaultRegistry() *Registry {
	g, err := NewRegistry(defaults)
	if err != nil {
		// The compiled-in table is validated by tests; this cannot happen
		// at runtime.
		panic(err)
	}
	return g
}
