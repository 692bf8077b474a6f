package erpapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
	"github.com/lecoq/erp-admin/pkg/dates"
)

var _ ports.DistribucionRepository = (*DistribucionRepo)(nil)

const distribucionesPath = "/api/distribuciones"

// MsgPedidoObligatorio mensaje del rechazo local cuando falta el pedido.
const MsgPedidoObligatorio = "Pedido (ID) es obligatorio."

// DistribucionRepo implementación de DistribucionRepository sobre /api/distribuciones.
type DistribucionRepo struct {
	c *Client
}

// NewDistribucionRepository construye el módulo de distribuciones.
func NewDistribucionRepository(c *Client) *DistribucionRepo {
	return &DistribucionRepo{c: c}
}

// distribucionBody cuerpo con los nombres del backend; pedidoId nunca va en el cuerpo.
type distribucionBody struct {
	DireccionEntrega *string `json:"direccionEntrega"`
	FechaSalida      *string `json:"fechaSalida"`
	FechaEntrega     *string `json:"fechaEntrega"`
	Estado           *string `json:"estado"`
	ChoferNombre     *string `json:"choferNombre"`
	ChoferTelefono   *string `json:"choferTelefono"`
	VehiculoPlaca    *string `json:"vehiculoPlaca"`
	VehiculoModelo   *string `json:"vehiculoModelo"`
	Observaciones    *string `json:"observaciones"`
}

// List devuelve las distribuciones normalizadas.
func (r *DistribucionRepo) List(ctx context.Context) ([]entity.Distribucion, error) {
	body, err := r.c.Get(ctx, distribucionesPath)
	if err != nil {
		return nil, err
	}
	recs := ExtractList(body)
	out := make([]entity.Distribucion, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapDistribucion(rec))
	}
	return out, nil
}

// GetByID obtiene una distribución.
func (r *DistribucionRepo) GetByID(ctx context.Context, id int64) (*entity.Distribucion, error) {
	body, err := r.c.Get(ctx, fmt.Sprintf("%s/%d", distribucionesPath, id))
	if err != nil {
		return nil, err
	}
	d := MapDistribucion(ExtractOne(body))
	return &d, nil
}

// Create crea una distribución. Sin pedido falla localmente sin tocar la red; el
// pedido viaja como query param pedidoId y no dentro del cuerpo.
func (r *DistribucionRepo) Create(ctx context.Context, in dto.DistribucionUpsert) (any, error) {
	if in.PedidoID == nil {
		r.c.log.Warn().Msg("crear distribución sin pedidoId")
		return nil, domain.NewValidationError("pedidoId", MsgPedidoObligatorio)
	}
	params := url.Values{}
	params.Set("pedidoId", strconv.FormatInt(*in.PedidoID, 10))

	body := buildDistribucionBody(in)
	direccion := ""
	if body.DireccionEntrega != nil {
		direccion = *body.DireccionEntrega
	}
	body.DireccionEntrega = &direccion

	out, err := r.c.Post(ctx, distribucionesPath, params, body)
	if err != nil {
		r.c.log.Error().Err(err).
			Int64("pedido_id", *in.PedidoID).
			Int("status", StatusOf(err)).
			Msg("POST /api/distribuciones falló")
		return nil, err
	}
	return out, nil
}

// Update actualiza una distribución. El pedido asociado es inmutable: no se envía.
func (r *DistribucionRepo) Update(ctx context.Context, id int64, in dto.DistribucionUpsert) (any, error) {
	return r.c.Put(ctx, fmt.Sprintf("%s/%d", distribucionesPath, id), buildDistribucionBody(in))
}

// Delete elimina una distribución.
func (r *DistribucionRepo) Delete(ctx context.Context, id int64) (any, error) {
	return r.c.Delete(ctx, fmt.Sprintf("%s/%d", distribucionesPath, id))
}

func buildDistribucionBody(in dto.DistribucionUpsert) distribucionBody {
	var direccion *string
	if in.DireccionEntrega != nil {
		d := strings.TrimSpace(*in.DireccionEntrega)
		direccion = &d
	}
	return distribucionBody{
		DireccionEntrega: direccion,
		FechaSalida:      dates.ToSubmittableDateTime(in.FechaSalida),
		FechaEntrega:     dates.ToSubmittableDateTime(in.FechaEntrega),
		Estado:           in.Estado,
		ChoferNombre:     blankToNil(in.ChoferNombre),
		ChoferTelefono:   blankToNil(in.ChoferTelefono),
		VehiculoPlaca:    blankToNil(in.VehiculoPlaca),
		VehiculoModelo:   blankToNil(in.VehiculoModelo),
		Observaciones:    blankToNil(in.Observaciones),
	}
}

// MapDistribucion normaliza un registro crudo de distribución.
func MapDistribucion(rec Record) entity.Distribucion {
	return entity.Distribucion{
		ID:             rec.Int(0, "id", "distribucionId", "codigo"),
		PedidoID:       rec.IntPtr("pedidoId", "pedido.id", "pedido_id"),
		Destino:        rec.StringPtr("direccionEntrega", "destino"),
		FechaSalida:    rec.StringPtr("fechaSalida", "fecha_salida"),
		FechaEntrega:   rec.StringPtr("fechaEntrega", "fecha_entrega"),
		Estado:         rec.StringPtr("estado"),
		ChoferNombre:   rec.StringPtr("choferNombre", "chofer_nombre"),
		ChoferTelefono: rec.StringPtr("choferTelefono", "chofer_telefono"),
		VehiculoPlaca:  rec.StringPtr("vehiculoPlaca", "vehiculo_placa"),
		VehiculoModelo: rec.StringPtr("vehiculoModelo", "vehiculo_modelo"),
		Observaciones:  rec.StringPtr("observaciones"),
	}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
