package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

type statusCheckDoc struct {
	ID         string `firestore:"ID"`
	ClientName string `firestore:"ClientName"`
	Timestamp  string `firestore:"Timestamp"`
}

type statusCheckRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newStatusCheckRepository(client *firestore.Client) *statusCheckRepository {
	return &statusCheckRepository{
		client: client,
	}
}

func (r *statusCheckRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "status_checks")
}

func (r *statusCheckRepository) Create(ctx context.Context, check *model.StatusCheck) error {
	if check.ID == "" {
		return goerr.New("status check ID must be assigned by the caller")
	}

	doc := &statusCheckDoc{
		ID:         string(check.ID),
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.UTC().Format(model.TimestampLayout),
	}

	docRef := r.collection().Doc(string(check.ID))
	if _, err := docRef.Create(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to create status check", goerr.V("id", check.ID))
	}

	return nil
}

func (r *statusCheckRepository) List(ctx context.Context) ([]*model.StatusCheck, error) {
	iter := r.collection().OrderBy("Timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	checks := make([]*model.StatusCheck, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate status checks")
		}

		var d statusCheckDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal status check")
		}

		ts, err := time.Parse(model.TimestampLayout, d.Timestamp)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse status check timestamp",
				goerr.V("id", d.ID), goerr.V("timestamp", d.Timestamp))
		}

		checks = append(checks, &model.StatusCheck{
			ID:         types.StatusCheckID(d.ID),
			ClientName: d.ClientName,
			Timestamp:  ts,
		})
	}

	return checks, nil
}
