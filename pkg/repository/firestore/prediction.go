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

// predictionDoc is the Firestore document representation of model.Prediction.
// Timestamp is stored as a fixed-width ISO-8601 UTC string so that OrderBy on
// the field yields chronological order.
type predictionDoc struct {
	ID          string `firestore:"ID"`
	Filename    string `firestore:"Filename,omitempty"`
	ContentType string `firestore:"ContentType,omitempty"`
	Breed       string `firestore:"Breed"`
	Timestamp   string `firestore:"Timestamp"`
}

func toPredictionDoc(p *model.Prediction) *predictionDoc {
	return &predictionDoc{
		ID:          string(p.ID),
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Breed:       string(p.Breed),
		Timestamp:   p.Timestamp.UTC().Format(model.TimestampLayout),
	}
}

func fromPredictionDoc(d *predictionDoc) (*model.Prediction, error) {
	ts, err := time.Parse(model.TimestampLayout, d.Timestamp)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse prediction timestamp",
			goerr.V("id", d.ID), goerr.V("timestamp", d.Timestamp))
	}

	return &model.Prediction{
		ID:          types.PredictionID(d.ID),
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Breed:       types.Breed(d.Breed),
		Timestamp:   ts,
	}, nil
}

func docToPrediction(doc *firestore.DocumentSnapshot) (*model.Prediction, error) {
	var d predictionDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal prediction")
	}
	return fromPredictionDoc(&d)
}

type predictionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPredictionRepository(client *firestore.Client) *predictionRepository {
	return &predictionRepository{
		client: client,
	}
}

func (r *predictionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "predictions")
}

func (r *predictionRepository) Create(ctx context.Context, pred *model.Prediction) error {
	if pred.ID == "" {
		return goerr.New("prediction ID must be assigned by the caller")
	}

	docRef := r.collection().Doc(string(pred.ID))
	if _, err := docRef.Create(ctx, toPredictionDoc(pred)); err != nil {
		return goerr.Wrap(err, "failed to create prediction", goerr.V("id", pred.ID))
	}

	return nil
}

func (r *predictionRepository) list(ctx context.Context, query firestore.Query) ([]*model.Prediction, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	predictions := make([]*model.Prediction, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate predictions")
		}

		p, err := docToPrediction(doc)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}

	return predictions, nil
}

func (r *predictionRepository) ListRecent(ctx context.Context, limit int) ([]*model.Prediction, error) {
	return r.list(ctx, r.collection().
		OrderBy("Timestamp", firestore.Desc).
		OrderBy("ID", firestore.Desc).
		Limit(limit))
}

func (r *predictionRepository) ListOldest(ctx context.Context, limit int) ([]*model.Prediction, error) {
	return r.list(ctx, r.collection().
		OrderBy("Timestamp", firestore.Asc).
		OrderBy("ID", firestore.Asc).
		Limit(limit))
}

func (r *predictionRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.collection().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count predictions")
	}
	return len(docs), nil
}

func (r *predictionRepository) DeleteByIDs(ctx context.Context, ids []types.PredictionID) error {
	if len(ids) == 0 {
		return nil
	}

	// Firestore deletes of missing documents are no-ops, which keeps
	// overlapping prune batches safe.
	bw := r.client.BulkWriter(ctx)
	for _, id := range ids {
		if _, err := bw.Delete(r.collection().Doc(string(id))); err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue prediction delete", goerr.V("id", id))
		}
	}
	bw.End()

	return nil
}

func (r *predictionRepository) CountByBreed(ctx context.Context) (map[types.Breed]int, error) {
	iter := r.collection().Select("Breed").Documents(ctx)
	defer iter.Stop()

	counts := make(map[types.Breed]int)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate predictions for aggregation")
		}

		var d struct {
			Breed string `firestore:"Breed"`
		}
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal prediction breed")
		}
		counts[types.Breed(d.Breed)]++
	}

	return counts, nil
}
