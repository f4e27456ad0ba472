package scheduling

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedulepro-backend/models"
	"schedulepro-backend/storage"
)

// clientUsage is the ledger-side referential check the directory needs
// before deleting a client.
type clientUsage interface {
	HasAppointmentsForClient(id uuid.UUID) bool
}

// documentCleaner removes a deleted client's document namespace.
type documentCleaner interface {
	RemoveClientDocuments(clientID uuid.UUID) error
}

// ClientDirectory owns the client records. Appointments hold non-owning
// references into it; a client with booked appointments cannot be deleted.
type ClientDirectory struct {
	store   storage.Store
	clients []models.Client // registration order
	usage   clientUsage
	docs    documentCleaner
}

func NewClientDirectory(store storage.Store, docs documentCleaner) (*ClientDirectory, error) {
	clients, err := store.LoadClients()
	if err != nil {
		return nil, err
	}
	return &ClientDirectory{store: store, clients: clients, docs: docs}, nil
}

func (d *ClientDirectory) bindUsage(u clientUsage) { d.usage = u }

// ClientInput is the data required to register a client.
type ClientInput struct {
	Name      string
	DOB       string
	Email     string
	Cellphone string
}

// ClientPatch carries optional replacement values for Update. Nil fields
// are left untouched.
type ClientPatch struct {
	Name      *string
	DOB       *string
	Email     *string
	Cellphone *string
}

// Register creates a client with a fresh id and persists it.
func (d *ClientDirectory) Register(input ClientInput) (models.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Client{}, validationErr("name", "must not be empty")
	}
	client := models.Client{
		ID:           uuid.New(),
		RegisteredAt: time.Now(),
		Name:         input.Name,
		DOB:          input.DOB,
		Email:        input.Email,
		Cellphone:    input.Cellphone,
		Comments:     []models.Comment{},
		Documents:    []models.DocumentRef{},
	}
	next := append(slices.Clone(d.clients), client)
	if err := d.store.SaveClients(next); err != nil {
		return models.Client{}, err
	}
	d.clients = next
	return client, nil
}

// Update merges the non-nil patch fields into an existing client.
func (d *ClientDirectory) Update(id uuid.UUID, patch ClientPatch) (models.Client, error) {
	i := d.indexOf(id)
	if i < 0 {
		return models.Client{}, ErrClientNotFound
	}
	client := d.clients[i]
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.Client{}, validationErr("name", "must not be empty")
		}
		client.Name = *patch.Name
	}
	if patch.DOB != nil {
		client.DOB = *patch.DOB
	}
	if patch.Email != nil {
		client.Email = *patch.Email
	}
	if patch.Cellphone != nil {
		client.Cellphone = *patch.Cellphone
	}
	return d.replaceAt(i, client)
}

// AddComment appends a timestamped note to the client record.
func (d *ClientDirectory) AddComment(id uuid.UUID, text string) error {
	i := d.indexOf(id)
	if i < 0 {
		return ErrClientNotFound
	}
	client := d.clients[i]
	client.Comments = append(slices.Clone(client.Comments), models.Comment{
		Timestamp: time.Now(),
		Text:      text,
	})
	_, err := d.replaceAt(i, client)
	return err
}

// AttachDocument appends a document reference to the client record. The
// document bytes live in the document store, never here.
func (d *ClientDirectory) AttachDocument(id uuid.UUID, ref models.DocumentRef) error {
	i := d.indexOf(id)
	if i < 0 {
		return ErrClientNotFound
	}
	client := d.clients[i]
	client.Documents = append(slices.Clone(client.Documents), ref)
	_, err := d.replaceAt(i, client)
	return err
}

// Delete removes a client. It refuses while any appointment references the
// client; on success the client's document namespace is handed to the
// document store for cleanup.
func (d *ClientDirectory) Delete(id uuid.UUID) error {
	i := d.indexOf(id)
	if i < 0 {
		return ErrClientNotFound
	}
	if d.usage != nil && d.usage.HasAppointmentsForClient(id) {
		return ErrClientHasAppointments
	}
	next := slices.Delete(slices.Clone(d.clients), i, i+1)
	if err := d.store.SaveClients(next); err != nil {
		return err
	}
	d.clients = next
	if d.docs != nil {
		// The record is already gone; leftover files are unreferenced.
		_ = d.docs.RemoveClientDocuments(id)
	}
	return nil
}

// Get returns the client with the given id.
func (d *ClientDirectory) Get(id uuid.UUID) (models.Client, error) {
	i := d.indexOf(id)
	if i < 0 {
		return models.Client{}, ErrClientNotFound
	}
	return d.clients[i], nil
}

// List returns all clients in registration order.
func (d *ClientDirectory) List() []models.Client {
	return slices.Clone(d.clients)
}

// Search matches the query case-insensitively against client names and
// email addresses.
func (d *ClientDirectory) Search(query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.List()
	}
	var matched []models.Client
	for _, c := range d.clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (d *ClientDirectory) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(d.clients, func(c models.Client) bool { return c.ID == id })
}

func (d *ClientDirectory) replaceAt(i int, client models.Client) (models.Client, error) {
	next := slices.Clone(d.clients)
	next[i] = client
	if err := d.store.SaveClients(next); err != nil {
		return models.Client{}, err
	}
	d.clients = next
	return client, nil
}
