package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/service"
	svcmocks "booking-settlement-api/internal/service/mocks"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret-0123456789"

type testServer struct {
	echo        *echo.Echo
	diagnostics *svcmocks.MockDiagnostics
	requests    *svcmocks.MockBookingRequest
	auctions    *svcmocks.MockAuction
	bookings    *svcmocks.MockBooking
	earnings    *svcmocks.MockEarnings
	payouts     *svcmocks.MockPayout
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	s := &testServer{
		echo:        echo.New(),
		diagnostics: svcmocks.NewMockDiagnostics(ctrl),
		requests:    svcmocks.NewMockBookingRequest(ctrl),
		auctions:    svcmocks.NewMockAuction(ctrl),
		bookings:    svcmocks.NewMockBooking(ctrl),
		earnings:    svcmocks.NewMockEarnings(ctrl),
		payouts:     svcmocks.NewMockPayout(ctrl),
	}
	SetupRoutesHandlers(s.echo, &service.Services{
		Diagnostics:    s.diagnostics,
		BookingRequest: s.requests,
		Auction:        s.auctions,
		Booking:        s.bookings,
		Earnings:       s.earnings,
		Payout:         s.payouts,
	}, testSecret, logger.Nop())

	return s
}

func token(t *testing.T, role common.Role, companyId uuid.UUID) string {
	t.Helper()
	claims := Claims{Role: string(role), RegisteredClaims: jwt.RegisteredClaims{Subject: "tester"}}
	if companyId != uuid.Nil {
		claims.CompanyId = companyId.String()
	}
	signed, err := IssueToken(testSecret, claims)
	if err != nil {
		t.Fatal(err)
	}

	return signed
}

func (s *testServer) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}

	return body
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	gomock.InOrder(
		s.diagnostics.EXPECT().Ping(gomock.Any()).Return(nil),
		s.diagnostics.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)

	if rec := s.do(http.MethodGet, "/api/ping", "", ""); rec.Code != http.StatusOK {
		t.Errorf("ping = %d, want 200", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/api/ping", "", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ping with database down = %d, want 503", rec.Code)
	}
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)
	forged, err := IssueToken("another-secret-0123456789", Claims{Role: "admin"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		bearer string
	}{
		{name: "no token"},
		{name: "wrong signature", bearer: forged},
		{name: "garbage", bearer: "not-a-jwt"},
		{name: "company without id", bearer: token(t, common.RoleCompany, uuid.Nil)},
		{name: "unknown role", bearer: token(t, "driver", uuid.Nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/payouts", tt.bearer, "")
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestGetAuctionPassesCaller(t *testing.T) {
	s := newTestServer(t)
	companyId := uuid.New()
	auctionId := uuid.New()

	s.auctions.EXPECT().
		GetAuction(gomock.Any(), gomock.Any(), auctionId).
		DoAndReturn(func(_ context.Context, p entity.Principal, _ uuid.UUID) (*entity.AuctionOutputModel, error) {
			if p.CompanyId != companyId || p.Role != common.RoleCompany {
				t.Errorf("principal = %+v", p)
			}
			return &entity.AuctionOutputModel{Id: auctionId.String(), Status: string(common.AuctionOpen), BidCount: 2}, nil
		})

	rec := s.do(http.MethodGet, "/api/auctions/"+auctionId.String(), token(t, common.RoleCompany, companyId), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "bestBidAmount") || strings.Contains(rec.Body.String(), "bestCompanyId") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestPostBid(t *testing.T) {
	s := newTestServer(t)
	companyId := uuid.New()
	auctionId := uuid.New()

	s.auctions.EXPECT().
		SubmitBid(gomock.Any(), gomock.Any(), auctionId, companyId, ledger.Money(8500)).
		DoAndReturn(func(_ context.Context, p entity.Principal, _, _ uuid.UUID, _ ledger.Money) (*entity.BidOutputModel, error) {
			if p.CompanyId != companyId || p.Role != common.RoleCompany {
				t.Errorf("principal = %+v", p)
			}
			return &entity.BidOutputModel{Id: uuid.NewString(), Amount: 8500}, nil
		})

	rec := s.do(http.MethodPost, "/api/auctions/"+auctionId.String()+"/bids", token(t, common.RoleCompany, companyId), `{"amount":"85.00"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"amount":85.00`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestErrorMapping(t *testing.T) {
	auctionId := uuid.New()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantRetryable bool
	}{
		{name: "bid above ceiling", err: &entity.ValidationError{Field: "amount", Msg: "exceeds auction ceiling 100.00", Err: entity.ErrBidTooHigh}, wantStatus: http.StatusUnprocessableEntity},
		{name: "closed auction", err: &entity.StateTransitionError{Resource: "auction", From: "closed_awarded", Action: "bid", Err: entity.ErrAuctionClosed}, wantStatus: http.StatusConflict},
		{name: "lock timeout", err: &entity.ConcurrencyConflictError{Resource: "auction", Msg: "concurrent update, retry"}, wantStatus: http.StatusConflict, wantRetryable: true},
		{name: "unknown auction", err: service.ErrAuctionNotFound, wantStatus: http.StatusNotFound},
		{name: "other company", err: entity.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "unexpected", err: errors.New("pq: connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.auctions.EXPECT().SubmitBid(gomock.Any(), gomock.Any(), auctionId, gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := s.do(http.MethodPost, "/api/auctions/"+auctionId.String()+"/bids", token(t, common.RoleCompany, uuid.New()), `{"amount":120}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeError(t, rec)
			if body.Retryable != tt.wantRetryable || body.Reason == "" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestRoleChecks(t *testing.T) {
	s := newTestServer(t)
	companyTok := token(t, common.RoleCompany, uuid.New())
	systemTok := token(t, common.RoleSystem, uuid.Nil)
	id := uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		bearer string
	}{
		{name: "company approves payout", method: http.MethodPost, path: "/api/payouts/" + id + "/approve", bearer: companyTok},
		{name: "company closes auction", method: http.MethodPost, path: "/api/auctions/" + id + "/close", bearer: companyTok},
		{name: "company lists bids", method: http.MethodGet, path: "/api/auctions/" + id + "/bids", bearer: companyTok},
		{name: "company signals completion", method: http.MethodPost, path: "/api/bookings/" + id + "/completed", bearer: companyTok},
		{name: "system cancels earnings", method: http.MethodPost, path: "/api/earnings/" + id + "/cancel", bearer: systemTok},
		{name: "system requests payout", method: http.MethodPost, path: "/api/payouts", bearer: systemTok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(tt.method, tt.path, tt.bearer, `{}`)
			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", rec.Code)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	admin := token(t, common.RoleAdmin, uuid.Nil)

	t.Run("defaults", func(t *testing.T) {
		s := newTestServer(t)
		s.payouts.EXPECT().
			ListPayouts(gomock.Any(), gomock.Any(), entity.PayoutFilter{Status: common.PayoutRequested}, entity.NewPaginationInput(20, 0)).
			Return(&entity.PageOutputModel[entity.PayoutOutputModel]{Items: []entity.PayoutOutputModel{}, Limit: 20}, nil)

		rec := s.do(http.MethodGet, "/api/payouts?status=requested", admin, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"items":[]`) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("date range", func(t *testing.T) {
		s := newTestServer(t)
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		s.earnings.EXPECT().
			ListEarnings(gomock.Any(), gomock.Any(), gomock.Any(), entity.NewPaginationInput(50, 100)).
			DoAndReturn(func(_ context.Context, _ entity.Principal, f entity.EarningsFilter, _ *entity.PaginationInput) (*entity.PageOutputModel[entity.EarningsOutputModel], error) {
				if f.From == nil || !f.From.Equal(from) || f.To != nil {
					t.Errorf("filter = %+v", f)
				}
				return &entity.PageOutputModel[entity.EarningsOutputModel]{}, nil
			})

		rec := s.do(http.MethodGet, "/api/earnings?limit=50&offset=100&from=2026-03-01T00:00:00Z", admin, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
		}
	})

	for _, query := range []string{"limit=0", "limit=101", "offset=-1", "status=unknown", "companyId=nope", "from=yesterday"} {
		t.Run(query, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(http.MethodGet, "/api/payouts?"+query, admin, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCancelBookingRequestWithoutBody(t *testing.T) {
	s := newTestServer(t)
	s.requests.EXPECT().
		CancelRequest(gomock.Any(), gomock.Any(), "BR-20260301-0A0B0C", "").
		Return(&entity.BookingRequestOutputModel{Status: string(common.RequestCancelled)}, nil)

	rec := s.do(http.MethodPost, "/api/booking-requests/BR-20260301-0A0B0C/cancel", token(t, common.RoleAdmin, uuid.Nil), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
}

func TestPostPayout(t *testing.T) {
	s := newTestServer(t)
	companyId := uuid.New()
	body := `{
		"periodStart": "2026-02-01T00:00:00Z",
		"periodEnd": "2026-03-01T00:00:00Z",
		"method": "bank_transfer",
		"accountDetails": {"accountHolder": "Acme Cars", "bankName": "First Bank", "accountNumber": "0001", "routingNumber": "021000021"}
	}`

	s.payouts.EXPECT().
		RequestPayout(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.Principal, in *entity.RequestPayoutInput) (*entity.PayoutOutputModel, error) {
			if in.CompanyId != companyId || in.Method != common.MethodBankTransfer {
				t.Errorf("input = %+v", in)
			}
			if !json.Valid(in.AccountDetails) {
				t.Errorf("account details = %s", in.AccountDetails)
			}
			return &entity.PayoutOutputModel{TotalAmount: 50000, FeeAmount: 500, NetAmount: 49500, Status: string(common.PayoutRequested)}, nil
		})

	rec := s.do(http.MethodPost, "/api/payouts", token(t, common.RoleCompany, companyId), body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"netAmount":495.00`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestInvalidPathId(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/payouts/not-a-uuid", token(t, common.RoleAdmin, uuid.Nil), "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
