package scraper

// RouteSummary holds the first few departures for one route label.
type RouteSummary struct {
	Route      string
	Departures []Entry
}

// SummarizeRoutes groups time-ordered entries by route, keeping at most
// maxPerRoute departures each. Routes are listed in order of their first
// departure. A non-positive maxPerRoute keeps every departure.
func SummarizeRoutes(entries []Entry, maxPerRoute int) []RouteSummary {
	routeMap := make(map[string]*RouteSummary)
	var routeKeys []string

	for _, e := range entries {
		if _, exists := routeMap[e.Route]; !exists {
			routeMap[e.Route] = &RouteSummary{Route: e.Route}
			routeKeys = append(routeKeys, e.Route)
		}

		s := routeMap[e.Route]
		if maxPerRoute <= 0 || len(s.Departures) < maxPerRoute {
			s.Departures = append(s.Departures, e)
		}
	}

	var result []RouteSummary
	for _, key := range routeKeys {
		result = append(result, *routeMap[key])
	}
	return result
}
