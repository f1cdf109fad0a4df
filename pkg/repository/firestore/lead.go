package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type leadDocument struct {
	ID        string    `firestore:"id"`
	FirstName string    `firestore:"first_name"`
	LastName  string    `firestore:"last_name"`
	Email     string    `firestore:"email"`
	Company   string    `firestore:"company"`
	Role      string    `firestore:"role"`
	Consent   bool      `firestore:"consent"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (d *leadDocument) toModel() *model.Lead {
	return &model.Lead{
		ID:        types.LeadID(d.ID),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Company:   d.Company,
		Role:      d.Role,
		Consent:   d.Consent,
		CreatedAt: d.CreatedAt,
	}
}

type leadRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newLeadRepository(client *firestore.Client) *leadRepository {
	return &leadRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *leadRepository) leadsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_leads"
	}
	return "leads"
}

func (r *leadRepository) newDocument(lead *model.Lead, now time.Time) *leadDocument {
	id := lead.ID
	if id == "" {
		id = types.NewLeadID()
	}
	return &leadDocument{
		ID:        id.String(),
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Company:   lead.Company,
		Role:      lead.Role,
		Consent:   lead.Consent,
		CreatedAt: now,
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	doc := r.newDocument(lead, time.Now().UTC())

	docRef := r.client.Collection(r.leadsCollection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create lead")
	}

	return doc.toModel(), nil
}

func (r *leadRepository) Get(ctx context.Context, id types.LeadID) (*model.Lead, error) {
	docRef := r.client.Collection(r.leadsCollection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get lead", goerr.V("id", id))
	}

	var leadDoc leadDocument
	if err := doc.DataTo(&leadDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal lead", goerr.V("id", id))
	}

	return leadDoc.toModel(), nil
}
