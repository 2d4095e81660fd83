package catalog

import (
	"strings"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/storedoc"
)

// localityWords are the locality-type words stripped from address segments
// (neighborhood, street, boulevard, alley).
var localityWords = []string{"محله", "خیابان", "بلوار", "کوچه"}

const neighborhoodPrefix = "محله "

// ResolveNeighborhood returns a human-readable neighborhood for a store. It
// prefers the first SEO schema's addressLocality, then the second segment of
// the address, then the city, then the unknown label. It never returns "".
func ResolveNeighborhood(address, cityName string, metadata storedoc.Document) string {
	if locality, ok := metadata.String("schemas", "0", "address", "addressLocality"); ok {
		locality = strings.TrimSpace(strings.ReplaceAll(locality, neighborhoodPrefix, ""))
		if locality != "" && locality != cityName {
			return locality
		}
	}

	if address == "" || address == constants.AddressUnavailable {
		return cityOrUnknown(cityName)
	}

	parts := strings.Split(address, constants.PersianComma)
	if len(parts) > 1 {
		segment := strings.TrimSpace(parts[1])
		for _, word := range localityWords {
			segment = strings.TrimSpace(strings.ReplaceAll(segment, word, ""))
		}
		if segment != "" && segment != cityName {
			return segment
		}
	}

	return cityOrUnknown(cityName)
}

// CityFromAddress returns the last comma-separated segment of an address.
func CityFromAddress(address string) string {
	parts := strings.Split(address, constants.PersianComma)

	return strings.TrimSpace(parts[len(parts)-1])
}

func cityOrUnknown(cityName string) string {
	if cityName == "" {
		return constants.UnknownLabel
	}

	return cityName
}
