package client

import (
	"net/mail"
	"strings"
	"time"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errs.Mark(errs.New("client name is required"), errs.ErrDomainValidation)
	ErrInvalidEmail = errs.Mark(errs.New("invalid client email"), errs.ErrDomainValidation)
)

type Client struct {
	id         uuid.UUID
	fullName   string
	email      *string
	phone      *string
	documentID *string
	createdAt  time.Time
}

func NewClient(fullName string, email, phone, documentID *string, now time.Time) (*Client, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyName
	}
	email = blankToNil(email)
	if email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			return nil, ErrInvalidEmail
		}
	}
	return &Client{
		id:         uuid.New(),
		fullName:   fullName,
		email:      email,
		phone:      blankToNil(phone),
		documentID: blankToNil(documentID),
		createdAt:  now,
	}, nil
}

func ReconstructClient(id uuid.UUID, fullName string, email, phone, documentID *string, createdAt time.Time) *Client {
	return &Client{id: id, fullName: fullName, email: email, phone: phone, documentID: documentID, createdAt: createdAt}
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) FullName() string     { return c.fullName }
func (c *Client) Email() *string       { return c.email }
func (c *Client) Phone() *string       { return c.phone }
func (c *Client) DocumentID() *string  { return c.documentID }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
