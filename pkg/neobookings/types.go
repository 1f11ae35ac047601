package neobookings

// The types below mirror the JSON the API returns, one struct per endpoint
// response plus the nested detail blocks they share. Optional nested objects
// are pointers: a nil field means the API omitted it, which is never an
// error.

// ResponseInfo is the status block the API attaches to every response.
type ResponseInfo struct {
	StatusCode   int              `json:"StatusCode"`
	RequestID    string           `json:"RequestId"`
	Timestamp    string           `json:"Timestamp"`
	TimeResponse int              `json:"TimeResponse"`
	Errors       []APIErrorDetail `json:"Error"`
}

// APIErrorDetail is one upstream-reported error inside ResponseInfo.
type APIErrorDetail struct {
	Code        string `json:"Code"`
	Description string `json:"Description"`
}

// AuthResponse is the /AuthenticatorRQ response.
type AuthResponse struct {
	Token    string       `json:"Token"`
	Response ResponseInfo `json:"Response"`
}

func (r *AuthResponse) responseInfo() *ResponseInfo { return &r.Response }

// BudgetDeleteResponse is the /BudgetDeleteRQ response.
type BudgetDeleteResponse struct {
	Response ResponseInfo `json:"Response"`
}

func (r *BudgetDeleteResponse) responseInfo() *ResponseInfo { return &r.Response }

// BudgetDetailsResponse is the /BudgetDetailsRQ response. BudgetDetails may
// hold fewer records than ids were requested; not-found ids are silently
// omitted by the API.
type BudgetDetailsResponse struct {
	BudgetDetails []BudgetDetail `json:"BudgetDetails"`
	Response      ResponseInfo   `json:"Response"`
}

func (r *BudgetDetailsResponse) responseInfo() *ResponseInfo { return &r.Response }

// BudgetUpdateResponse is the /BudgetPropertiesUpdateRQ response.
type BudgetUpdateResponse struct {
	BudgetDetails *BudgetBasicDetail `json:"BudgetDetails"`
	Response      ResponseInfo       `json:"Response"`
}

func (r *BudgetUpdateResponse) responseInfo() *ResponseInfo { return &r.Response }

// BudgetSearchResponse is the /BudgetSearchRQ response.
type BudgetSearchResponse struct {
	BudgetBasicDetail []BudgetBasicDetail `json:"BudgetBasicDetail"`
	CurrentPage       int                 `json:"CurrentPage"`
	TotalPages        int                 `json:"TotalPages"`
	TotalRecords      int                 `json:"TotalRecords"`
	Response          ResponseInfo        `json:"Response"`
}

func (r *BudgetSearchResponse) responseInfo() *ResponseInfo { return &r.Response }

// HotelSearchResponse is the /HotelSearchRQ response.
type HotelSearchResponse struct {
	HotelBasicDetail []HotelBasicDetail `json:"HotelBasicDetail"`
	CurrentPage      int                `json:"CurrentPage"`
	TotalPages       int                `json:"TotalPages"`
	TotalRecords     int                `json:"TotalRecords"`
	Response         ResponseInfo       `json:"Response"`
}

func (r *HotelSearchResponse) responseInfo() *ResponseInfo { return &r.Response }

// BudgetDetail is the full budget record returned by /BudgetDetailsRQ.
type BudgetDetail struct {
	ID           string          `json:"Id"`
	HotelID      string          `json:"HotelId"`
	CreationUser string          `json:"CreationUser"`
	BudgetLang   string          `json:"BudgetLang"`
	Status       string          `json:"Status"`
	CreationDate string          `json:"CreationDate"`
	LastUpdate   string          `json:"LastUpdate"`
	IsSent       bool            `json:"IsSent"`
	SentDate     string          `json:"sentDate"` // lowercase on the wire
	IsCopied     bool            `json:"IsCopied"`
	CopiedDate   string          `json:"CopiedDate"`
	Customer     *CustomerDetail `json:"CustomerDetail"`
	Basket       *BasketDetail   `json:"BasketDetail"`
	Billing      *BillingDetails `json:"BillingDetails"`
}

// BudgetBasicDetail is the compact budget record used by /BudgetSearchRQ
// results and echoed back by /BudgetPropertiesUpdateRQ.
type BudgetBasicDetail struct {
	BudgetID      string          `json:"BudgetId"`
	Origin        string          `json:"Origin"`
	HotelID       string          `json:"HotelId"`
	RateName      string          `json:"RateName"`
	BoardName     string          `json:"BoardName"`
	CreationUser  string          `json:"CreationUser"`
	ArrivalDate   string          `json:"ArrivalDate"`
	DepartureDate string          `json:"DepartureDate"`
	Status        string          `json:"Status"`
	IsSent        bool            `json:"IsSent"`
	SentDate      string          `json:"SentDate"`
	IsCopied      bool            `json:"IsCopied"`
	CopiedDate    string          `json:"CopiedDate"`
	CreationDate  string          `json:"CreationDate"`
	Customer      *CustomerDetail `json:"CustomerDetail"`
	Amounts       *AmountsDetail  `json:"AmountsDetail"`
}

// CustomerDetail is the customer block attached to budget records.
type CustomerDetail struct {
	Name                 string `json:"Name"`
	Surname              string `json:"Surname"`
	Email                string `json:"Email"`
	Phone                string `json:"Phone"`
	Passport             string `json:"Passport"`
	Country              string `json:"Country"`
	State                string `json:"State"`
	City                 string `json:"City"`
	Zip                  string `json:"Zip"`
	Address              string `json:"Address"`
	Comments             string `json:"Comments"`
	AdsAuthorization     *bool  `json:"AdsAuthorization"`
	LoyaltyAuthorization *bool  `json:"LoyaltyAuthorization"`
}

// BasketDetail is the basket block attached to full budget records.
type BasketDetail struct {
	Origin             string         `json:"Origin"`
	Rewards            bool           `json:"Rewards"`
	AllowDeposit       bool           `json:"AllowDeposit"`
	AllowFullPayment   bool           `json:"AllowFullPayment"`
	AllowInstallments  bool           `json:"AllowInstallments"`
	AllowEstablishment bool           `json:"AllowEstablishment"`
	Amounts            *AmountsDetail `json:"AmountsDetail"`
}

// AmountsDetail is the pricing breakdown block.
type AmountsDetail struct {
	Currency         string  `json:"Currency"`
	AmountFinal      float64 `json:"AmountFinal"`
	AmountTotal      float64 `json:"AmountTotal"`
	AmountBase       float64 `json:"AmountBase"`
	AmountTaxes      float64 `json:"AmountTaxes"`
	AmountTouristTax float64 `json:"AmountTouristTax"`
	AmountBefore     float64 `json:"AmountBefore"`
	AmountOffers     float64 `json:"AmountOffers"`
	AmountDiscounts  float64 `json:"AmountDiscounts"`
	AmountExtras     float64 `json:"AmountExtras"`
	AmountDeposit    float64 `json:"AmountDeposit"`
	AmountPaid       float64 `json:"AmountPaid"`
	AmountLoyalty    float64 `json:"AmountLoyalty"`
}

// BillingDetails is the invoicing block attached to full budget records.
type BillingDetails struct {
	Name    string `json:"Name"`
	Cif     string `json:"Cif"`
	Address string `json:"Address"`
	Zip     string `json:"Zip"`
	City    string `json:"City"`
	Country string `json:"Country"`
}

// HotelBasicDetail is one hotel record in /HotelSearchRQ results.
type HotelBasicDetail struct {
	HotelID           string         `json:"HotelId"`
	HotelHash         string         `json:"HotelHash"`
	HotelName         string         `json:"HotelName"`
	HotelDescription  string         `json:"HotelDescription"`
	Currency          string         `json:"Currency"`
	Rewards           bool           `json:"Rewards"`
	HotelMode         string         `json:"HotelMode"`
	HotelView         string         `json:"HotelView"`
	TimeZone          string         `json:"TimeZone"`
	OpeningDate       string         `json:"OpeningDate"`
	ClosingDate       string         `json:"ClosingDate"`
	ReopeningDate     string         `json:"ReopeningDate"`
	FirstDayWithPrice string         `json:"FirstDayWithPrice"`
	GuestTypes        []GuestType    `json:"HotelGuestType"`
	HotelTypes        []CodeName     `json:"HotelType"`
	Categories        []CodeName     `json:"HotelCategory"`
	Location          *HotelLocation `json:"HotelLocation"`
	Amenities         []Amenity      `json:"HotelAmenity"`
	Media             []Media        `json:"Media"`
}

// GuestType is one guest age band a hotel accepts.
type GuestType struct {
	GuestType string `json:"GuestType"`
	MinAge    int    `json:"MinAge"`
	MaxAge    int    `json:"MaxAge"`
}

// CodeName is the code/name pair the API uses for zones, states, countries,
// hotel types, and categories.
type CodeName struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// HotelLocation is the location block of a hotel record.
type HotelLocation struct {
	Address    string     `json:"Address"`
	City       string     `json:"City"`
	PostalCode string     `json:"PostalCode"`
	Latitude   float64    `json:"Latitude"`
	Longitude  float64    `json:"Longitude"`
	Zones      []CodeName `json:"Zone"`
	State      *CodeName  `json:"State"`
	Country    *CodeName  `json:"Country"`
}

// Amenity is one hotel amenity entry.
type Amenity struct {
	Code       string `json:"Code"`
	Name       string `json:"Name"`
	Filterable bool   `json:"Filterable"`
}

// Media is one hotel media entry.
type Media struct {
	MediaType string `json:"MediaType"`
	Caption   string `json:"Caption"`
	URL       string `json:"Url"`
	Main      bool   `json:"Main"`
	Order     int    `json:"Order"`
}
