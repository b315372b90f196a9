package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// keywordScore measures how much of the job's vocabulary appears in the
// resume: |resume ∩ job| / |job| over unique tokens. The ratio is
// recall-oriented rather than symmetric: the question is whether the resume
// covers the job's requirements, not whether the two texts are alike.
func keywordScore(resumeTokens, jobTokens []string) float64 {
	if len(jobTokens) == 0 {
		return 0
	}

	resume := make(map[string]struct{}, len(resumeTokens))
	for _, t := range resumeTokens {
		resume[t] = struct{}{}
	}

	job := make(map[string]struct{}, len(jobTokens))
	covered := 0
	for _, t := range jobTokens {
		if _, seen := job[t]; seen {
			continue
		}
		job[t] = struct{}{}
		if _, ok := resume[t]; ok {
			covered++
		}
	}

	return clamp01(float64(covered) / float64(len(job)))
}

// skillScore returns the fraction of required skills present in the resume
// (technical and soft combined) plus the missing ones in the job's original
// requirement order. A job with no required skills scores 1.0: absent
// requirements must not depress the score.
func skillScore(technical, soft, required []string) (float64, []string) {
	if len(required) == 0 {
		return 1.0, nil
	}

	have := make(map[string]struct{}, len(technical)+len(soft))
	for _, s := range technical {
		have[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range soft {
		have[strings.ToLower(s)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(required))
	matched := 0
	total := 0
	var missing []string

	for _, want := range required {
		key := strings.ToLower(strings.TrimSpace(want))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		total++

		if _, ok := have[key]; ok {
			matched++
		} else {
			missing = append(missing, want)
		}
	}

	if total == 0 {
		return 1.0, nil
	}

	return clamp01(float64(matched) / float64(total)), missing
}

// yearsPattern picks up statements like "5 years", "5+ years" or "7.5 yrs".
var yearsPattern = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)

// detectExperienceYears scans resume text for years-of-experience mentions
// and returns the largest one found.
func detectExperienceYears(raw string) (float64, bool) {
	best := 0.0
	found := false

	for _, m := range yearsPattern.FindAllStringSubmatch(strings.ToLower(raw), -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		found = true
		if v > best {
			best = v
		}
	}

	return best, found
}

// experienceScore compares detected years against the job's requirement.
// No requirement means no penalty (1.0). A resume with no detectable
// statement of experience scores 0.0; that is an absence of evidence, not an
// error.
func experienceScore(raw string, requiredYears int) float64 {
	if requiredYears <= 0 {
		return 1.0
	}

	detected, ok := detectExperienceYears(raw)
	if !ok {
		return 0
	}

	return clamp01(detected / float64(requiredYears))
}
