package installer

import (
	"context"
	"errors"
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/keys"
	"fastencode/internal/domain/paths"
	"fastencode/internal/models"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/araddon/dateparse"
	"github.com/gocolly/colly"
)

var releaseNameRx = regexp.MustCompile(`FastEncode Pro - Accessibility Edition v(\d+(?:\.\d+)?)(?:\.py)?$`)

// CheckLatest scrapes the release page and returns the newest published
// version it links to.
func CheckLatest(pageURL string) (*models.Release, error) {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (X11; Linux x86_64) fastencode"),
	)

	var (
		latest    *models.Release
		published string
		scrapeErr error
	)

	c.OnHTML("time[datetime]", func(e *colly.HTMLElement) {
		if published == "" {
			published = e.Attr("datetime")
		}
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		m := releaseNameRx.FindStringSubmatch(e.Text)
		if m == nil {
			m = releaseNameRx.FindStringSubmatch(e.Attr("href"))
		}
		if m == nil {
			return
		}

		candidate := &models.Release{
			Version: m[1],
			URL:     e.Request.AbsoluteURL(e.Attr("href")),
		}
		if latest == nil || versionLess(latest.Version, candidate.Version) {
			latest = candidate
		}
	})

	c.OnError(func(_ *colly.Response, err error) {
		scrapeErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to visit release page %q: %w", pageURL, err)
	}
	if scrapeErr != nil {
		return nil, fmt.Errorf("failed to scrape release page %q: %w", pageURL, scrapeErr)
	}
	if latest == nil {
		return nil, fmt.Errorf("no %s releases found on %q", consts.AppName, pageURL)
	}

	if published != "" {
		if t, err := dateparse.ParseAny(published); err == nil {
			latest.Published = t
		} else {
			logging.D(2, "Could not parse release date %q: %v", published, err)
		}
	}

	return latest, nil
}

// versionLess compares dotted numeric versions as floats ("0.06" < "0.1").
func versionLess(a, b string) bool {
	av, errA := strconv.ParseFloat(a, 64)
	bv, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return a < b
	}
	return av < bv
}

// RunUpdate checks the release page and, unless check-only is set,
// replaces the installed program file with the newest release.
func RunUpdate(ctx context.Context) error {
	pageURL := abstractions.GetString(keys.ReleasePage)
	if pageURL == "" {
		pageURL = consts.DefaultReleasePage
	}

	release, err := CheckLatest(pageURL)
	if err != nil {
		return err
	}

	if release.Published.IsZero() {
		logging.I("Latest release: %s v%s", consts.AppName, release.Version)
	} else {
		logging.I("Latest release: %s v%s (published %s)", consts.AppName, release.Version, release.Published.Format("2006-01-02"))
	}

	if abstractions.GetBool(keys.CheckOnly) {
		return nil
	}

	if _, err := os.Stat(paths.AppExecutablePath); err != nil {
		return errors.New("program is not installed yet, run the install command first")
	}

	url := release.URL
	if url == "" {
		url = abstractions.GetString(keys.ScriptURL)
	}
	if url == "" {
		url = consts.DefaultScriptURL
	}

	if err := installRemoteScript(ctx, url, paths.AppExecutablePath); err != nil {
		return err
	}

	logging.S("Updated %s to v%s", consts.AppName, release.Version)
	return nil
}
