package appointment

import (
	"context"

	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

// LineInput describe una línea de servicio entrante. Si Price viene
// vacío se copia el precio actual del catálogo: es un valor por defecto
// de un solo disparo, no un enlace vivo.
type LineInput struct {
	ServiceID uint
	Price     *float64
}

func buildLines(
	ctx context.Context,
	repo domain.Repository,
	appointmentID uint,
	inputs []LineInput,
) ([]models.AppointmentLine, error) {

	lines := make([]models.AppointmentLine, 0, len(inputs))

	for _, in := range inputs {
		service, err := repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}

		price := service.Price
		if in.Price != nil {
			price = *in.Price
		}

		lines = append(lines, models.AppointmentLine{
			AppointmentID: appointmentID,
			ServiceID:     service.ID,
			Service:       *service,
			Price:         price,
		})
	}

	return lines, nil
}
