package yt

import (
	"fmt"

	"github.com/patrickprogramme/ytscript/pkg/model"
)

// playerRequest est le corps JSON minimal attendu par le endpoint player.
type playerRequest struct {
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

// playerResponse représente la réponse JSON brute du endpoint player.
// On ne mappe que les champs dont le listing a besoin.
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails struct {
		VideoID string `json:"videoId"`
		Title   string `json:"title"`
	} `json:"videoDetails"`
	Captions struct {
		Renderer struct {
			CaptionTracks []captionTrackItem `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrackItem struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = piste auto-générée
	Name         struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"name"`
}

// label extrait le libellé humain d'une piste, quel que soit le format
// utilisé par le service (simpleText ou runs).
func (c captionTrackItem) label() string {
	if c.Name.SimpleText != "" {
		return c.Name.SimpleText
	}
	if len(c.Name.Runs) > 0 {
		return c.Name.Runs[0].Text
	}
	return ""
}

// buildTranscriptList transforme la réponse player en TranscriptList.
// Retourne ErrNoTranscripts si la vidéo est injouable ou sans captions.
func buildTranscriptList(videoID string, resp playerResponse) (*TranscriptList, error) {
	if s := resp.PlayabilityStatus.Status; s != "" && s != "OK" {
		reason := resp.PlayabilityStatus.Reason
		if reason == "" {
			reason = s
		}
		return nil, fmt.Errorf("%w (%s)", ErrNoTranscripts, reason)
	}

	tracks := resp.Captions.Renderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w : captions désactivées ou absentes", ErrNoTranscripts)
	}

	list := &TranscriptList{
		VideoID: videoID,
		Title:   resp.VideoDetails.Title,
		Tracks:  make([]TranscriptHandle, 0, len(tracks)),
	}
	for _, t := range tracks {
		if t.BaseURL == "" {
			continue
		}
		src := model.SubSourceManual
		if t.Kind == "asr" {
			src = model.SubSourceAutomatic
		}
		list.Tracks = append(list.Tracks, TranscriptHandle{
			Lang:    t.LanguageCode,
			Name:    t.label(),
			Source:  src,
			BaseURL: t.BaseURL,
		})
	}
	if len(list.Tracks) == 0 {
		return nil, fmt.Errorf("%w : aucune piste exploitable", ErrNoTranscripts)
	}
	return list, nil
}
