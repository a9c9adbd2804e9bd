package domain

// All date and timestamp fields are ISO-8601 strings. Monthly aggregation
// works on the first 7 characters of these strings, so they must never be
// reformatted when round-tripping through storage.

type RepairStatus string

const (
	RepairStatusPending      RepairStatus = "pending"
	RepairStatusDiagnosing   RepairStatus = "diagnosing"
	RepairStatusWaitingParts RepairStatus = "waiting_parts"
	RepairStatusRepairing    RepairStatus = "repairing"
	RepairStatusReady        RepairStatus = "ready"
	RepairStatusDelivered    RepairStatus = "delivered"
	RepairStatusCancelled    RepairStatus = "cancelled"
)

type Customer struct {
	ID              string `json:"id"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	IsBlacklisted   bool   `json:"isBlacklisted,omitempty"`
	BlacklistReason string `json:"blacklistReason,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

type Device struct {
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serialNumber,omitempty"`
	IMEI          string `json:"imei,omitempty"`
	Color         string `json:"color,omitempty"`
	PasswordType  string `json:"passwordType"`
	PasswordValue string `json:"passwordValue"`
}

const (
	PasswordTypePIN      = "pin"
	PasswordTypePattern  = "pattern"
	PasswordTypePassword = "password"
	PasswordTypeNone     = "none"
)

type PhoneFace string

const (
	FaceFront  PhoneFace = "front"
	FaceBack   PhoneFace = "back"
	FaceLeft   PhoneFace = "left"
	FaceRight  PhoneFace = "right"
	FaceTop    PhoneFace = "top"
	FaceBottom PhoneFace = "bottom"
)

type DiagnosticMark struct {
	ID   string    `json:"id"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Face PhoneFace `json:"face"`
	Type string    `json:"type"`
	Note string    `json:"note"`
}

type RepairPhoto struct {
	ID      string `json:"id"`
	DataURL string `json:"dataUrl"`
	Type    string `json:"type"`
	TakenAt string `json:"takenAt"`
}

type UsedPart struct {
	StockItemID string  `json:"stockItemId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
}

type RepairRecord struct {
	ID               string           `json:"id"`
	TicketNo         string           `json:"ticketNo"`
	Customer         Customer         `json:"customer"`
	Device           Device           `json:"device"`
	IssueDescription string           `json:"issueDescription"`
	Status           RepairStatus     `json:"status"`
	AssignedTo       string           `json:"assignedTo,omitempty"`
	TechnicianNotes  string           `json:"technicianNotes"`
	DiagnosticMarks  []DiagnosticMark `json:"diagnosticMarks"`
	Photos           []RepairPhoto    `json:"photos"`
	UsedParts        []UsedPart       `json:"usedParts"`
	EstimatedCost    float64          `json:"estimatedCost"`
	FinalCost        float64          `json:"finalCost"`
	WarrantyDays     int              `json:"warrantyDays"`
	SignatureDataURL string           `json:"signatureDataUrl,omitempty"`
	LoanerDeviceID   string           `json:"loanerDeviceId,omitempty"`
	CompanyID        string           `json:"companyId,omitempty"`
	PaymentStatus    string           `json:"paymentStatus,omitempty"`
	PaymentMethod    string           `json:"paymentMethod,omitempty"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
}

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	PaymentMethodCash         = "cash"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodBankTransfer = "bank_transfer"
)

type Supplier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type StockCategory string

const (
	StockCategoryScreen    StockCategory = "screen"
	StockCategoryBattery   StockCategory = "battery"
	StockCategoryConnector StockCategory = "connector"
	StockCategoryCamera    StockCategory = "camera"
	StockCategoryHousing   StockCategory = "housing"
	StockCategoryIC        StockCategory = "ic"
	StockCategoryFlex      StockCategory = "flex"
	StockCategoryAccessory StockCategory = "accessory"
	StockCategoryOther     StockCategory = "other"
)

type StockItem struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Category         StockCategory `json:"category"`
	Brand            string        `json:"brand,omitempty"`
	CompatibleModels []string      `json:"compatibleModels"`
	Quantity         int           `json:"quantity"`
	CriticalLevel    int           `json:"criticalLevel"`
	BuyPrice         float64       `json:"buyPrice"`
	BuyCurrency      string        `json:"buyCurrency"`
	SellPrice        float64       `json:"sellPrice"`
	SupplierID       string        `json:"supplierId,omitempty"`
	Barcode          string        `json:"barcode,omitempty"`
	CreatedAt        string        `json:"createdAt"`
}

const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

type RMARecord struct {
	ID           string `json:"id"`
	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	PartName     string `json:"partName"`
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

const (
	RMAReasonDefective       = "defective"
	RMAReasonWrongItem       = "wrong-item"
	RMAReasonDamagedShipping = "damaged-shipping"

	RMAStatusPending  = "pending"
	RMAStatusShipped  = "shipped"
	RMAStatusRefunded = "refunded"
	RMAStatusRejected = "rejected"
)

type WishlistItem struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	ProductName   string `json:"productName"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

const (
	WishlistStatusPending   = "pending"
	WishlistStatusOrdered   = "ordered"
	WishlistStatusArrived   = "arrived"
	WishlistStatusFulfilled = "fulfilled"
)

type SecondHandDevice struct {
	ID         string  `json:"id"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	IMEI       string  `json:"imei,omitempty"`
	Condition  string  `json:"condition"`
	BuyPrice   float64 `json:"buyPrice"`
	SellPrice  float64 `json:"sellPrice,omitempty"`
	Status     string  `json:"status"`
	BoughtFrom string  `json:"boughtFrom"`
	SoldTo     string  `json:"soldTo,omitempty"`
	SoldDate   string  `json:"soldDate,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

const (
	SecondHandStatusInStock = "in-stock"
	SecondHandStatusListed  = "listed"
	SecondHandStatusSold    = "sold"
)

type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	PaidBy      string  `json:"paidBy,omitempty"`
}

type Income struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

const (
	IncomeCategoryService    = "service"
	IncomeCategorySales      = "sales"
	IncomeCategoryCollection = "collection"
	IncomeCategoryOther      = "other"
)

type ExchangeRate struct {
	Currency    string  `json:"currency"`
	Rate        float64 `json:"rate"`
	Bank        string  `json:"bank"`
	LastUpdated string  `json:"lastUpdated"`
	Source      string  `json:"source"`
}

const (
	RateSourceManual = "manual"
	RateSourceAPI    = "api"
)

type Company struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TaxID         string `json:"taxId,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

type QuoteItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type Quote struct {
	ID           string      `json:"id"`
	CompanyID    string      `json:"companyId,omitempty"`
	CustomerName string      `json:"customerName"`
	Items        []QuoteItem `json:"items"`
	Total        float64     `json:"total"`
	ValidUntil   string      `json:"validUntil"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
}

const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

type LoanerDevice struct {
	ID                  string `json:"id"`
	Brand               string `json:"brand"`
	Model               string `json:"model"`
	IMEI                string `json:"imei,omitempty"`
	Status              string `json:"status"`
	CurrentCustomerID   string `json:"currentCustomerId,omitempty"`
	CurrentCustomerName string `json:"currentCustomerName,omitempty"`
	DueDate             string `json:"dueDate,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

const (
	LoanerStatusAvailable = "available"
	LoanerStatusOnLoan    = "on-loan"
)

type Appointment struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	Date             string `json:"date"`
	TimeSlot         string `json:"timeSlot"`
	DeviceModel      string `json:"deviceModel"`
	IssueDescription string `json:"issueDescription"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
}

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no-show"
)

type QuickMessage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
	Icon  string `json:"icon,omitempty"`
}

type StickyNote struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Color       string `json:"color"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"`
}

// DeletedItem is the recycle-bin envelope. OriginalData carries the deleted
// record verbatim; restore re-inserts it as-is rather than rebuilding from
// defaults, so nothing may normalize it in between.
type DeletedItem struct {
	ID           string `json:"id"`
	OriginalData any    `json:"originalData"`
	Type         string `json:"type"`
	DeletedAt    string `json:"deletedAt"`
	Description  string `json:"description"`
}

const (
	DeletedTypeRepair     = "repair"
	DeletedTypeCustomer   = "customer"
	DeletedTypeStock      = "stock"
	DeletedTypeExpense    = "expense"
	DeletedTypeQuote      = "quote"
	DeletedTypeSupplier   = "supplier"
	DeletedTypeCompany    = "company"
	DeletedTypeSecondHand = "secondhand"
	DeletedTypeLoaner     = "loaner"
)

type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PIN      string `json:"pin"`
	IsActive bool   `json:"isActive"`
}

const (
	RoleAdmin        = "admin"
	RoleTechnician   = "technician"
	RoleReceptionist = "receptionist"
)

type AccountTransaction struct {
	ID          string  `json:"id"`
	EntityID    string  `json:"entityId"`
	EntityType  string  `json:"entityType"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
}

const (
	EntityTypeSupplier = "supplier"
	EntityTypeCompany  = "company"

	TransactionTypeDebt    = "debt"
	TransactionTypePayment = "payment"
)

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

type SaleItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Sale struct {
	ID            string     `json:"id"`
	Items         []SaleItem `json:"items"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
	Date          string     `json:"date"`
}

type DeviceTemplate struct {
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	CommonIssues []string `json:"commonIssues"`
}

// AppState is the single root document. Mutations always replace the whole
// value; it is serialized as one JSON blob under a fixed storage key.
type AppState struct {
	Repairs             []RepairRecord       `json:"repairs"`
	Customers           []Customer           `json:"customers"`
	StockItems          []StockItem          `json:"stockItems"`
	Suppliers           []Supplier           `json:"suppliers"`
	RMARecords          []RMARecord          `json:"rmaRecords"`
	Wishlist            []WishlistItem       `json:"wishlist"`
	SecondHandDevices   []SecondHandDevice   `json:"secondHandDevices"`
	Expenses            []Expense            `json:"expenses"`
	Incomes             []Income             `json:"incomes"`
	ExchangeRates       []ExchangeRate       `json:"exchangeRates"`
	Companies           []Company            `json:"companies"`
	Quotes              []Quote              `json:"quotes"`
	LoanerDevices       []LoanerDevice       `json:"loanerDevices"`
	Appointments        []Appointment        `json:"appointments"`
	QuickMessages       []QuickMessage       `json:"quickMessages"`
	StickyNotes         []StickyNote         `json:"stickyNotes"`
	DeletedItems        []DeletedItem        `json:"deletedItems"`
	Staff               []StaffMember        `json:"staff"`
	AccountTransactions []AccountTransaction `json:"accountTransactions"`
	Products            []Product            `json:"products"`
	Sales               []Sale               `json:"sales"`
	PrivacyMode         bool                 `json:"privacyMode"`
	CurrentUserID       string               `json:"currentUserId,omitempty"`
}

// Actor identifies the authenticated API caller.
type Actor struct {
	StaffID string
	Name    string
	Role    string
}
