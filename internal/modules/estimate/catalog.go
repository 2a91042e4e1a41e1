// README: Static rate catalog for the compared ride services.
package estimate

// DefaultCatalog lists the Lagos ride services the comparison covers, with
// their published base fare and per-km rate in NGN. Rates were sampled from
// in-app quotes and are refreshed by hand, not scraped.
func DefaultCatalog() []Rate {
	return []Rate{
		{ServiceID: "uber", ServiceName: "Uber", Class: ClassApp, VehicleType: "UberX", BaseFare: 700, PerKm: 180, Currency: "NGN"},
		{ServiceID: "bolt", ServiceName: "Bolt", Class: ClassApp, VehicleType: "Economy", BaseFare: 600, PerKm: 160, Currency: "NGN"},
		{ServiceID: "lagride", ServiceName: "LagRide", Class: ClassApp, VehicleType: "Sedan", BaseFare: 650, PerKm: 150, Currency: "NGN"},
		{ServiceID: "indrive", ServiceName: "inDrive", Class: ClassBid, VehicleType: "Economy", BaseFare: 500, PerKm: 140, Currency: "NGN"},
		{ServiceID: "rida", ServiceName: "Rida", Class: ClassLocal, VehicleType: "Standard", BaseFare: 450, PerKm: 130, Currency: "NGN"},
	}
}
