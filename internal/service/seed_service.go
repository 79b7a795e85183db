package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
)

type seedCollectionRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, collection *models.Collection) error
}

type seedItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
}

// SeedService populates the catalog with sample data for demos. Seeding
// is guarded by the collection count, so repeated calls are no-ops.
type SeedService struct {
	collections seedCollectionRepository
	items       seedItemRepository
	cache       *CacheService
	logger      *zap.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(collections seedCollectionRepository, items seedItemRepository, cache *CacheService, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{collections: collections, items: items, cache: cache, logger: logger}
}

// Seed inserts the demo collections and items. It returns false without
// touching the store when any collection already exists.
func (s *SeedService) Seed(ctx context.Context) (bool, error) {
	count, err := s.collections.Count(ctx)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count collections")
	}
	if count > 0 {
		return false, nil
	}

	for _, seed := range demoCatalog() {
		collection := seed.collection
		if err := s.collections.Create(ctx, &collection); err != nil {
			return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed collection")
		}
		for _, item := range seed.items {
			item.CollectionID = collection.ID
			if err := s.items.Create(ctx, &item); err != nil {
				return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed item")
			}
		}
		s.logger.Info("seeded demo collection",
			zap.String("collection_id", collection.ID),
			zap.String("name", collection.Name),
			zap.Int("items", len(seed.items)),
		)
	}

	s.cache.Invalidate(ctx)
	return true, nil
}

type demoCollection struct {
	collection models.Collection
	items      []models.Item
}

func demoCatalog() []demoCollection {
	return []demoCollection{
		{
			collection: models.Collection{
				Name:        "Anillos Elegantes",
				Description: "Colección exclusiva de anillos artesanales con diseños únicos y materiales de la más alta calidad.",
				ImageBase64: "https://images.joyeria.example/collections/anillos.jpg",
				Position:    0,
			},
			items: []models.Item{
				{
					Name:        "Anillo de Plata Trenzada",
					Description: "Anillo de plata de ley con trenzado a mano, acabado pulido.",
					ImageBase64: "https://images.joyeria.example/items/anillo-plata.jpg",
					Position:    0,
				},
				{
					Name:        "Anillo Sello Dorado",
					Description: "Sello clásico bañado en oro de 18 quilates, grabado artesanal.",
					ImageBase64: "https://images.joyeria.example/items/anillo-sello.jpg",
					Position:    1,
				},
			},
		},
		{
			collection: models.Collection{
				Name:        "Collares Únicos",
				Description: "Collares hechos a mano que combinan piedras naturales con metales nobles.",
				ImageBase64: "https://images.joyeria.example/collections/collares.jpg",
				Position:    1,
			},
			items: []models.Item{
				{
					Name:        "Collar de Cuarzo Rosa",
					Description: "Cadena fina de plata con colgante de cuarzo rosa tallado.",
					ImageBase64: "https://images.joyeria.example/items/collar-cuarzo.jpg",
					Position:    0,
				},
			},
		},
		{
			collection: models.Collection{
				Name:        "Pulseras Artesanales",
				Description: "Pulseras tejidas y forjadas en el taller, piezas irrepetibles.",
				ImageBase64: "https://images.joyeria.example/collections/pulseras.jpg",
				Position:    2,
			},
			items: []models.Item{
				{
					Name:        "Pulsera de Eslabones Martillados",
					Description: "Eslabones de plata martillados uno a uno, cierre de gancho.",
					ImageBase64: "https://images.joyeria.example/items/pulsera-eslabones.jpg",
					Position:    0,
				},
				{
					Name:        "Pulsera de Hilo Encerado",
					Description: "Hilo encerado con cuentas de plata, ajuste deslizante.",
					ImageBase64: "https://images.joyeria.example/items/pulsera-hilo.jpg",
					Position:    1,
				},
			},
		},
	}
}
