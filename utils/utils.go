package utils

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/CyCoreSystems/ari/v5"
	"github.com/CyCoreSystems/ari/v5/client/native"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	models "denku.com/billing/models"
)

var db *sql.DB

type DBConn struct {
	Conn *sql.DB
}

type BillingParams struct {
	Data     map[string]string
	Provider string
}

// InitLogger configures logrus based on LOG_DESTINATIONS ("stdout", "file",
// or "stdout,file").
func InitLogger(destinations string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	switch destinations {
	case "file":
		f, err := os.OpenFile("billing.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			logrus.SetOutput(f)
		}
	case "stdout,file", "file,stdout":
		f, err := os.OpenFile("billing.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			logrus.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	default:
		logrus.SetOutput(os.Stdout)
	}
}

func Log(level logrus.Level, message string) {
	logrus.StandardLogger().Log(level, message)
}

func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

func CreateDBConn() (*sql.DB, error) {
	dsn := Config("DB_DSN")
	conn, err := sql.Open("mysql", dsn+"?parseTime=true")
	if err != nil {
		return nil, errors.Wrap(err, "could not open database connection")
	}
	return conn, nil
}

func NewDBConn(db *sql.DB) *DBConn {
	if db == nil {
		db, _ = CreateDBConn()
	}
	return &DBConn{
		Conn: db,
	}
}

func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	var err error
	db, err = CreateDBConn()
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetSettingsFromAPI fetches global credentials and bucket info from the internal API
func GetSettingsFromAPI() (*models.Settings, error) {
	apiUrl := os.Getenv("API_URL") + "/platform/getSettings"
	apiKey := os.Getenv("DENKU_KEY")

	req, err := http.NewRequest("GET", apiUrl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Denku-Api-Token", apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var settings models.Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// CreateARIConnection initializes a connection to the Asterisk ARI server
func CreateARIConnection() (*ari.Client, error) {
	Log(logrus.InfoLevel, "Connecting to ARI: "+os.Getenv("ARI_URL"))

	cl, err := native.Connect(&native.Options{
		Application:  os.Getenv("ARI_CALL_APP"),
		Username:     os.Getenv("ARI_USERNAME"),
		Password:     os.Getenv("ARI_PASSWORD"),
		URL:          os.Getenv("ARI_URL"),
		WebsocketURL: os.Getenv("ARI_WSURL"),
	})

	if err != nil {
		Log(logrus.ErrorLevel, "Failed to build native ARI client: "+err.Error())
		return nil, err
	}

	return &cl, nil
}

func (c *DBConn) GetBillingParams() (*BillingParams, error) {
	row := c.Conn.QueryRow("SELECT payment_gateway FROM customizations")
	var paymentGateway string
	if err := row.Scan(&paymentGateway); err != nil {
		return nil, err
	}

	row = c.Conn.QueryRow("SELECT stripe_private_key FROM api_credentials")
	var stripePrivateKey string
	if err := row.Scan(&stripePrivateKey); err != nil {
		return nil, err
	}

	data := make(map[string]string)
	data["stripe_key"] = stripePrivateKey
	return &BillingParams{Provider: paymentGateway, Data: data}, nil
}

func GetPlan(plans []models.ServicePlan, workspace *models.Workspace) *models.ServicePlan {
	for _, target := range plans {
		if target.KeyName == workspace.Plan {
			return &target
		}
	}
	return nil
}

// BillingMonth formats t as the canonical "2006-01" billing-month key.
func BillingMonth(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// PreviousBillingMonth returns the month that just closed relative to t.
// Subtraction happens from the first of t's month; AddDate on a day-29..31
// would normalize forward into the wrong month.
func PreviousBillingMonth(t time.Time) string {
	t = t.UTC()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return BillingMonth(first.AddDate(0, -1, 0))
}

// CreateLockToken generates an opaque token for the invoice-run advisory lock.
func CreateLockToken() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("LCK-%X", b), nil
}

func GetRowCount(rows *sql.Rows) (int, error) {
	var count int
	for rows.Next() {
		err := rows.Scan(&count)
		if err != nil {
			return 0, err
		}
	}
	return count, nil
}

// CentsFromUsd converts a USD amount to whole cents, rounding half up to
// the nearest cent.
func CentsFromUsd(usd float64) int64 {
	return int64(usd*100 + 0.5)
}
