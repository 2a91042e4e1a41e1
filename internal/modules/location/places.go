// README: Static place dataset backing autocomplete.
package location

import "farecast/internal/types"

// knownPlaces is the offline autocomplete dataset. It covers the pickup
// spots people actually type, not every street; anything else goes through
// forward geocoding.
var knownPlaces = []types.Location{
	{Address: "Murtala Muhammed International Airport, Ikeja", Lat: 6.5774, Lng: 3.3215},
	{Address: "Ikeja City Mall, Alausa, Ikeja", Lat: 6.6142, Lng: 3.3580},
	{Address: "Computer Village, Ikeja", Lat: 6.5965, Lng: 3.3421},
	{Address: "National Stadium, Surulere", Lat: 6.4977, Lng: 3.3657},
	{Address: "Yaba Market, Yaba", Lat: 6.5095, Lng: 3.3711},
	{Address: "University of Lagos, Akoka", Lat: 6.5158, Lng: 3.3898},
	{Address: "Tafawa Balewa Square, Lagos Island", Lat: 6.4489, Lng: 3.4005},
	{Address: "Balogun Market, Lagos Island", Lat: 6.4530, Lng: 3.3869},
	{Address: "National Museum, Onikan", Lat: 6.4457, Lng: 3.4062},
	{Address: "Eko Hotel & Suites, Victoria Island", Lat: 6.4270, Lng: 3.4290},
	{Address: "Bar Beach, Victoria Island", Lat: 6.4225, Lng: 3.4173},
	{Address: "Landmark Beach, Victoria Island", Lat: 6.4226, Lng: 3.4464},
	{Address: "Lekki Phase 1, Lekki", Lat: 6.4478, Lng: 3.4723},
	{Address: "Lekki Conservation Centre, Lekki", Lat: 6.4415, Lng: 3.5353},
	{Address: "Nike Art Gallery, Lekki", Lat: 6.4434, Lng: 3.4876},
	{Address: "Ikota Shopping Complex, Ajah", Lat: 6.4611, Lng: 3.5665},
	{Address: "Festac Town, Amuwo-Odofin", Lat: 6.4667, Lng: 3.2833},
	{Address: "Apapa Port, Apapa", Lat: 6.4432, Lng: 3.3667},
	{Address: "Oshodi Transport Interchange, Oshodi", Lat: 6.5536, Lng: 3.3434},
	{Address: "Mile 2, Amuwo-Odofin", Lat: 6.4581, Lng: 3.3126},
}
