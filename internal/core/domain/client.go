package domain

// Representative is a billing contact recorded against a client. There is
// no uniqueness constraint beyond the id.
type Representative struct {
	RepresentativeID string `json:"id"`
	Name             string `json:"name"`
	Department       string `json:"department"`
	Email            string `json:"email"`
}

// Client is a customer entity owned by exactly one business profile.
// A client cannot be deleted while any invoice references it.
type Client struct {
	ClientID        string           `json:"id"`
	BusinessID      string           `json:"businessId"`
	Name            string           `json:"name"`
	Address         string           `json:"address"`
	Representatives []Representative `json:"representatives"`
}

// FindRepresentative resolves a representative by id. The second return
// value reports whether the reference resolved; callers render a missing
// representative as absent rather than failing.
func (c *Client) FindRepresentative(repID string) (Representative, bool) {
	for _, rep := range c.Representatives {
		if rep.RepresentativeID == repID {
			return rep, true
		}
	}
	return Representative{}, false
}
