package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

func TestDispatch_EveryInputHasOneOutcome(t *testing.T) {
	inputs := append([]string{"", "SOMETHING_ELSE", "farmer"}, roleStrings()...)

	for _, in := range inputs {
		out := Dispatch(in, "")
		mounted := out.Dashboard != NoDashboard
		redirected := out.Redirect != ""
		assert.True(t, mounted != redirected, "input %q gave %+v", in, out)
	}
}

func roleStrings() []string {
	var out []string
	for _, r := range models.Roles() {
		out = append(out, string(r))
	}
	return out
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		session, last string
		want          Outcome
	}{
		{"FARMER", "", Outcome{Dashboard: FarmerDashboard}},
		{"DISTRIBUTOR", "", Outcome{Dashboard: DistributorDashboard}},
		{"BUYER", "", Outcome{Dashboard: BuyerDashboard}},
		{"ADMIN", "", Outcome{Redirect: "/login"}},
		{"", "", Outcome{Redirect: "/login"}},
		{"", "BUYER", Outcome{Dashboard: BuyerDashboard}},
		{"FARMER", "BUYER", Outcome{Dashboard: FarmerDashboard}},
		{"CONSUMER", "BUYER", Outcome{Redirect: "/login"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Dispatch(tt.session, tt.last), "%q/%q", tt.session, tt.last)
	}
}

func TestDashboard_String(t *testing.T) {
	assert.Equal(t, "distributor", DistributorDashboard.String())
	assert.Equal(t, "none", NoDashboard.String())
}
