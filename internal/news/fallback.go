package news

import "github.com/goliatone/go-newsfeed/pkg/interfaces"

// Fallback returns the placeholder posts served when the batch cannot be
// loaded. The slice is built on every call, newest first.
func Fallback() []interfaces.FallbackPost {
	return []interfaces.FallbackPost{
		{
			ID:            1,
			Date:          "2024-10-01",
			FormattedDate: "October 2024",
			Title:         "New AAMI Standards Released",
			Summary:       "Updated guidelines for sterile processing now available. Contact us to ensure your facility meets the latest compliance requirements.",
		},
		{
			ID:            2,
			Date:          "2024-09-01",
			FormattedDate: "September 2024",
			Title:         "Fall Training Sessions",
			Summary:       "Join our comprehensive training program covering advanced sterile processing techniques and quality assurance protocols.",
		},
		{
			ID:            3,
			Date:          "2024-08-01",
			FormattedDate: "August 2024",
			Title:         "Crown Point Expands Services",
			Summary:       "We're excited to announce expanded consulting services to help facilities optimize their sterile processing operations.",
		},
	}
}
