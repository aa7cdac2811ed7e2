package adcom1

// AdCOM 1.0 List: API Frameworks
//
// API frameworks either supported by a placement or required by an ad.
type APIFramework int8

const (
	APIFrameworkVPAID10 APIFramework = 1 // VPAID 1.0
	APIFrameworkVPAID20 APIFramework = 2 // VPAID 2.0
	APIFrameworkMRAID10 APIFramework = 3 // MRAID 1.0
	APIFrameworkORMMA   APIFramework = 4 // ORMMA
	APIFrameworkMRAID20 APIFramework = 5 // MRAID 2.0
	APIFrameworkMRAID30 APIFramework = 6 // MRAID 3.0
	APIFrameworkOMID10  APIFramework = 7 // OMID 1.0
)
