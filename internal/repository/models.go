package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Reference tier.

type Role struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description sql.NullString `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
}

type Permission struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description sql.NullString `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
}

type RolePermission struct {
	RoleID       uuid.UUID `json:"role_id"`
	PermissionID uuid.UUID `json:"permission_id"`
}

type AcademicCategory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type AcademicSubcategory struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobTitle struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type Skill struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// SystemBalance is a singleton row; its id is always 1.
type SystemBalance struct {
	ID        int       `json:"id"`
	Available int64     `json:"available"`
	Reserved  int64     `json:"reserved"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity tier.

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type AcademicUser struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Status       string         `json:"status"`
	Institution  string         `json:"institution"`
	JobTitle     string         `json:"job_title"`
	Skills       pq.StringArray `json:"skills"`
	Rating       float64        `json:"rating"`
	RatingsCount int            `json:"ratings_count"`
	CreatedAt    time.Time      `json:"created_at"`
}

type Admin struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoleID    uuid.UUID `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

type UserBalance struct {
	ID             uuid.UUID `json:"id"`
	AcademicUserID uuid.UUID `json:"academic_user_id"`
	Available      int64     `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
}

// Offerings tier.

type Service struct {
	ID            uuid.UUID     `json:"id"`
	ProviderID    uuid.UUID     `json:"provider_id"`
	CategoryID    uuid.UUID     `json:"category_id"`
	SubcategoryID uuid.NullUUID `json:"subcategory_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Price         int64         `json:"price"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Work struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomRequest struct {
	ID            uuid.UUID     `json:"id"`
	RequesterID   uuid.UUID     `json:"requester_id"`
	CategoryID    uuid.UUID     `json:"category_id"`
	SubcategoryID uuid.NullUUID `json:"subcategory_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Budget        int64         `json:"budget"`
	Deadline      time.Time     `json:"deadline"`
	Status        string        `json:"status"`
	// AcceptedOfferID stays null at seed time; acceptance flows live in the
	// application, not in fixtures.
	AcceptedOfferID uuid.NullUUID `json:"accepted_offer_id"`
	CreatedAt       time.Time     `json:"created_at"`
}

type CustomRequestOffer struct {
	ID         uuid.UUID `json:"id"`
	RequestID  uuid.UUID `json:"request_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Amount     int64     `json:"amount"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Negotiation struct {
	ID         uuid.UUID `json:"id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	ServiceID  uuid.UUID `json:"service_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ServicePurchase struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"service_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment rows are metadata only; FileURL always points at the shared
// placeholder, no binary content is stored.

type ServiceAttachment struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"service_id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkAttachment struct {
	ID        uuid.UUID `json:"id"`
	WorkID    uuid.UUID `json:"work_id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomRequestAttachment struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

type OfferAttachment struct {
	ID        uuid.UUID `json:"id"`
	OfferID   uuid.UUID `json:"offer_id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestImplementationDeliverable struct {
	ID         uuid.UUID    `json:"id"`
	RequestID  uuid.UUID    `json:"request_id"`
	ProviderID uuid.UUID    `json:"provider_id"`
	Note       string       `json:"note"`
	FileURL    string       `json:"file_url"`
	Accepted   sql.NullBool `json:"accepted"`
	DecidedAt  sql.NullTime `json:"decided_at"`
	CreatedAt  time.Time    `json:"created_at"`
}

type ServicePurchaseDeliverable struct {
	ID         uuid.UUID    `json:"id"`
	PurchaseID uuid.UUID    `json:"purchase_id"`
	Note       string       `json:"note"`
	FileURL    string       `json:"file_url"`
	Accepted   sql.NullBool `json:"accepted"`
	DecidedAt  sql.NullTime `json:"decided_at"`
	CreatedAt  time.Time    `json:"created_at"`
}

type CustomRequestTimeline struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    string    `json:"action"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type PurchaseTimeline struct {
	ID         uuid.UUID `json:"id"`
	PurchaseID uuid.UUID `json:"purchase_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Action     string    `json:"action"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// Interaction tier.

// Chat carries three optional parent links; exactly one is non-null per row.
type Chat struct {
	ID                uuid.UUID     `json:"id"`
	ServicePurchaseID uuid.NullUUID `json:"service_purchase_id"`
	OfferID           uuid.NullUUID `json:"offer_id"`
	NegotiationID     uuid.NullUUID `json:"negotiation_id"`
	FirstUserID       uuid.UUID     `json:"first_user_id"`
	SecondUserID      uuid.UUID     `json:"second_user_id"`
	CreatedAt         time.Time     `json:"created_at"`
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageAttachment struct {
	ID        uuid.UUID `json:"id"`
	MessageID uuid.UUID `json:"message_id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating targets exactly one of a service or a custom request.
type Rating struct {
	ID              uuid.UUID     `json:"id"`
	RaterID         uuid.UUID     `json:"rater_id"`
	ServiceID       uuid.NullUUID `json:"service_id"`
	CustomRequestID uuid.NullUUID `json:"custom_request_id"`
	Stars           int           `json:"stars"`
	Comment         string        `json:"comment"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Dispute targets exactly one of a service purchase or a custom request.
type Dispute struct {
	ID                uuid.UUID     `json:"id"`
	ComplainantID     uuid.UUID     `json:"complainant_id"`
	RespondentID      uuid.UUID     `json:"respondent_id"`
	ServicePurchaseID uuid.NullUUID `json:"service_purchase_id"`
	CustomRequestID   uuid.NullUUID `json:"custom_request_id"`
	Reason            string        `json:"reason"`
	Status            string        `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Transaction is a ledger entry; the reason determines which single optional
// link is populated.
type Transaction struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"user_id"`
	AdminID           uuid.NullUUID `json:"admin_id"`
	Direction         string        `json:"direction"`
	Reason            string        `json:"reason"`
	Amount            int64         `json:"amount"`
	ServicePurchaseID uuid.NullUUID `json:"service_purchase_id"`
	CustomRequestID   uuid.NullUUID `json:"custom_request_id"`
	DisputeID         uuid.NullUUID `json:"dispute_id"`
	CreatedAt         time.Time     `json:"created_at"`
}

type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
