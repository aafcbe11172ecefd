package seed

import (
	"log"

	"gorm.io/datatypes"

	"github.com/example/velora/internal/models"
	"github.com/example/velora/internal/store"
)

var sampleProfiles = []models.Profile{
	{
		Name:     "Sophia",
		Age:      24,
		Location: "Kampala",
		Services: datatypes.NewJSONSlice([]string{"Dinner Dates", "Travel Companion", "Events"}),
		Remark:   "Elegant and charming with a passion for art and travel",
		Phone:    "+256703055329",
		DaysLeft: 5,
		Status:   models.StatusAvailable,
		Image:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=687&q=80",
		Verified: true,
		Rating:   4.8,
	},
	{
		Name:     "Isabella",
		Age:      22,
		Location: "Entebbe",
		Services: datatypes.NewJSONSlice([]string{"Weekend Getaways", "Social Events", "Business Dinners"}),
		Remark:   "Adventurous soul with a love for nature and photography",
		Phone:    "+256703055329",
		DaysLeft: 0,
		Status:   models.StatusExpired,
		Image:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80",
		Shy:      true,
		Verified: true,
		Rating:   4.5,
	},
	{
		Name:     "Emma",
		Age:      26,
		Location: "Jinja",
		Services: datatypes.NewJSONSlice([]string{"Music Events", "Dance Parties", "Cultural Tours"}),
		Remark:   "Creative spirit with a passion for music and dance",
		Phone:    "+256703055329",
		DaysLeft: 3,
		Status:   models.StatusAvailable,
		Image:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?ixlib=rb-4.0.3&auto=format&fit=crop&w=688&q=80",
		Verified: true,
		Rating:   4.9,
	},
	{
		Name:     "Olivia",
		Age:      28,
		Location: "Mbarara",
		Services: datatypes.NewJSONSlice([]string{"Intellectual Conversations", "Book Clubs", "Museum Tours"}),
		Remark:   "Intellectual beauty with a love for literature and philosophy",
		Phone:    "+256703055329",
		DaysLeft: 15,
		Status:   models.StatusUnavailable,
		Image:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?ixlib=rb-4.0.3&auto=format&fit=crop&w=764&q=80",
		Shy:      true,
		Verified: false,
		Rating:   4.7,
	},
}

// Run inserts the sample catalog when the profile collection is empty.
func Run(st *store.Store) error {
	total, err := st.CountProfiles()
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	log.Println("seeding sample catalog data")
	for i := range sampleProfiles {
		profile := sampleProfiles[i]
		if _, err := st.CreateProfile(&profile); err != nil {
			return err
		}
	}
	return nil
}
