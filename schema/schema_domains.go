package schema

// DomainInfo describes one declared domain's scoring configuration.
type DomainInfo struct {
	Domain    Domain   `json:"domain"`
	Strategy  Strategy `json:"strategy"`
	RawMax    float64  `json:"raw_max"`
	WHIWeight float64  `json:"whi_weight"`
	Scored    bool     `json:"scored"`
}

// DomainReference is the render model for the domain reference listing.
type DomainReference struct {
	Description string       `json:"description"`
	Domains     []DomainInfo `json:"domains"`
	Pressure    string       `json:"pressure"`
}

// BuildDomainReference constructs the reference model from the fixed
// scoring tables.
func BuildDomainReference() *DomainReference {
	weights := WHIWeights()
	scored := make(map[Domain]struct{}, len(ScoredDomains))
	for _, d := range ScoredDomains {
		scored[d] = struct{}{}
	}

	infos := make([]DomainInfo, 0, len(AllDomains))
	for _, d := range AllDomains {
		_, isScored := scored[d]
		infos = append(infos, DomainInfo{
			Domain:    d,
			Strategy:  DomainStrategy(d),
			RawMax:    RawMax(d),
			WHIWeight: weights[d],
			Scored:    isScored,
		})
	}

	return &DomainReference{
		Description: "Local score = clamp(100 * raw points / raw max); final score blends in global pressure",
		Domains:     infos,
		Pressure:    "Final = 0.70*local + 0.30*(WHI * 0.35), clamped to [0,100]",
	}
}
