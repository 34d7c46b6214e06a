package models

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

var KnownPlatforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformInstagram, PlatformFacebook}

const DefaultCharacterLimit = 5000

var characterLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformInstagram: 2200,
	PlatformLinkedIn:  3000,
	PlatformFacebook:  63206,
}

func (p Platform) Known() bool {
	_, ok := characterLimits[p]
	return ok
}

// CharacterLimit falls back to DefaultCharacterLimit for unknown platforms.
func (p Platform) CharacterLimit() int {
	if limit, ok := characterLimits[p]; ok {
		return limit
	}
	return DefaultCharacterLimit
}

func ToPlatforms(names []string) []Platform {
	platforms := make([]Platform, 0, len(names))
	for _, name := range names {
		platforms = append(platforms, Platform(name))
	}
	return platforms
}

func (p Platform) String() string {
	return string(p)
}
