package Importer

import (
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"

	"Sentinel/Models"

	"github.com/PuerkitoBio/goquery"
)

// Importer backfills completion events and shift reports from the legacy
// staff portal, which only renders HTML. It logs in with a form post, then
// parses the per-day report table.
type Importer struct {
	BaseURL  string
	Username string
	Password string
	Client   *http.Client
}

func New() *Importer {
	jar, _ := cookiejar.New(nil)
	return &Importer{
		BaseURL:  os.Getenv("LEGACY_PORTAL_URL"),
		Username: os.Getenv("LEGACY_PORTAL_USER"),
		Password: os.Getenv("LEGACY_PORTAL_PASSWORD"),
		Client: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether a portal is configured at all.
func (imp *Importer) Enabled() bool {
	return imp.BaseURL != ""
}

func (imp *Importer) login() error {
	response, err := imp.Client.Get(imp.BaseURL + "/login")
	if err != nil {
		return fmt.Errorf("fetching login page: %w", err)
	}
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return fmt.Errorf("parsing login page: %w", err)
	}
	token, _ := document.Find("input[name='csrf_token']").Attr("value")

	form := url.Values{
		"username":   {imp.Username},
		"password":   {imp.Password},
		"csrf_token": {token},
	}
	loginResponse, err := imp.Client.PostForm(imp.BaseURL+"/login", form)
	if err != nil {
		return fmt.Errorf("posting login form: %w", err)
	}
	defer loginResponse.Body.Close()

	if loginResponse.StatusCode >= 400 {
		return fmt.Errorf("portal login failed with status %d", loginResponse.StatusCode)
	}
	return nil
}

// ImportDay pulls one date's completion table and upserts the rows. Portal
// rows carry the staff email, the task id and the completion clock time.
func (imp *Importer) ImportDay(dateKey string) error {
	if err := imp.login(); err != nil {
		return err
	}

	response, err := imp.Client.Get(fmt.Sprintf("%s/reports?date=%s", imp.BaseURL, dateKey))
	if err != nil {
		return fmt.Errorf("fetching report page: %w", err)
	}
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return fmt.Errorf("parsing report page: %w", err)
	}

	imported := 0
	document.Find("table.completions tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		email := strings.TrimSpace(cells.Eq(0).Text())
		taskID := strings.TrimSpace(cells.Eq(1).Text())
		clock := strings.TrimSpace(cells.Eq(2).Text())

		var user Models.User
		if err := Models.DB.Where("email = ?", email).First(&user).Error; err != nil {
			log.Printf("Importer: unknown portal user %s, skipping", email)
			return
		}

		completedAt, err := time.ParseInLocation("2006-01-02 15:04", dateKey+" "+clock, time.Local)
		if err != nil {
			log.Printf("Importer: unparseable completion time %q, skipping", clock)
			return
		}

		var completion Models.CompletionItem
		result := Models.DB.Where("user_id = ? AND report_date = ? AND task_id = ?",
			user.ID, dateKey, taskID).First(&completion)
		if result.Error == nil {
			// Already recorded in Sentinel; the portal never wins over it.
			return
		}

		completion = Models.CompletionItem{
			UserID:      user.ID,
			ReportDate:  dateKey,
			TaskID:      taskID,
			CompletedAt: completedAt,
			CompletedBy: user.Name,
			Source:      Models.CompletionSourceStaff,
		}
		if err := Models.DB.Create(&completion).Error; err != nil {
			log.Printf("Importer: failed to save completion for %s: %v", email, err)
			return
		}
		imported++
	})

	log.Printf("Importer: %s done, %d new completions", dateKey, imported)
	return nil
}

// ImportRecent covers today and yesterday, the window the portal still
// accepts edits for.
func (imp *Importer) ImportRecent() {
	for _, dateKey := range []string{
		time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		time.Now().Format("2006-01-02"),
	} {
		if err := imp.ImportDay(dateKey); err != nil {
			log.Printf("Importer: %s failed: %v", dateKey, err)
		}
	}
}
